package settings

// Settings are the effective application settings: compiled-in defaults
// overlaid with whatever jobsdb.yml next to the executable provides.
type Settings struct {
	DatabasePath     string `json:"databasePath"`
	CatalogTitle     string `json:"catalogTitle"`
	PageSize         int    `json:"pageSize"`
	SampleSize       int    `json:"sampleSize"`
	DefaultSortField string `json:"defaultSortField"`
	DefaultSortDesc  bool   `json:"defaultSortDesc"`
	EnableQueryCache bool   `json:"enableQueryCache"`
	CacheSizeLimitMB int    `json:"cacheSizeLimitMB"`
	WindowWidth      int    `json:"windowWidth"`
	WindowHeight     int    `json:"windowHeight"`
	InstanceID       string `json:"instanceId"`
}

var defaultSettings = Settings{
	DatabasePath:     "rockstar_jobs.db",
	CatalogTitle:     "Rockstar Jobs Database",
	PageSize:         25,
	SampleSize:       5,
	DefaultSortField: "name",
	DefaultSortDesc:  false,
	EnableQueryCache: true,
	CacheSizeLimitMB: 50,
	WindowWidth:      1024,
	WindowHeight:     768,
}
