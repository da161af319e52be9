package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/joho/godotenv"

	"github.com/fulldump/dyngrid/bootstrap"
	"github.com/fulldump/dyngrid/configuration"
)

var banner = `
 ____              ____      _     _ 
|  _ \ _   _ _ __ / ___|_ __(_) __| |
| | | | | | | '_ \ |  _| '__| |/ _' |
| |_| | |_| | | | | |_| | |  | | (_| |
|____/ \__, |_| |_|\____|_|  |_|\__,_|
       |___/          version ` + bootstrap.VERSION + `
`

func main() {

	// A .env file is optional, real environment variables take precedence
	_ = godotenv.Load()

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _, err := bootstrap.Bootstrap(&c)
	if err != nil {
		fmt.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	err = start()
	if err != nil {
		fmt.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
}
