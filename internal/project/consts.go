package project

// Filenames stored under the project StateDir
const (
	StateDir   = ".protodeck"
	ConfigFile = "protodeck.yaml"
	CacheFile  = "deployments.json"
	SiteDir    = "site"
	EntryFile  = "index.html"
)

// File and directory permissions used across the project
const (
	FilePerm = 0644
	DirPerm  = 0755
)
