package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	HttpsEnabled      bool   `usage:"serve HTTPS"`
	HttpsSelfsigned   bool   `usage:"use a self signed certificate"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	ApiKey            string `usage:"api key, empty disables authentication"`
	ApiSecret         string `usage:"api secret"`
	Demo              bool   `usage:"create a demo color table on start"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          "127.0.0.1:8080",
		HttpsEnabled:      false,
		HttpsSelfsigned:   false,
		EnableCompression: true,
		ApiKey:            "",
		ApiSecret:         "",
		Demo:              false,
		Version:           false,
		ShowBanner:        true,
		ShowConfig:        false,
	}
}
