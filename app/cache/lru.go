package cache

// lruList tracks eviction order with a doubly linked list plus an index
// by key. head side is most recently used.
type lruList struct {
	head, tail *lruNode
	nodes      map[string]*lruNode
}

type lruNode struct {
	key        string
	prev, next *lruNode
}

func newLRUList() *lruList {
	head := &lruNode{}
	tail := &lruNode{}
	head.next = tail
	tail.prev = head
	return &lruList{head: head, tail: tail, nodes: make(map[string]*lruNode)}
}

func (l *lruList) addToFront(key string) {
	if n, ok := l.nodes[key]; ok {
		l.unlink(n)
		l.link(n)
		return
	}
	n := &lruNode{key: key}
	l.nodes[key] = n
	l.link(n)
}

func (l *lruList) moveToFront(key string) {
	if n, ok := l.nodes[key]; ok {
		l.unlink(n)
		l.link(n)
	}
}

func (l *lruList) remove(key string) {
	if n, ok := l.nodes[key]; ok {
		l.unlink(n)
		delete(l.nodes, key)
	}
}

// removeOldest unlinks and returns the least recently used key, or ""
// when the list is empty.
func (l *lruList) removeOldest() string {
	if len(l.nodes) == 0 {
		return ""
	}
	n := l.tail.prev
	l.unlink(n)
	delete(l.nodes, n.key)
	return n.key
}

func (l *lruList) size() int {
	return len(l.nodes)
}

func (l *lruList) link(n *lruNode) {
	n.next = l.head.next
	n.prev = l.head
	l.head.next.prev = n
	l.head.next = n
}

func (l *lruList) unlink(n *lruNode) {
	n.prev.next = n.next
	n.next.prev = n.prev
}
