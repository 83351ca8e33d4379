package cfg

type Cfg struct {
	// Backend catalog service
	Host     string
	User     string
	Password string

	// Application configuration
	Port           string
	UserAgent      string
	RequestTimeout int

	// Optional system profiles
	ProfilesFile string
	Profile      string

	// Application metadata
	Debug   bool
	Version string
}
