package helper

import (
	"github.com/spf13/viper"
)

var CfgFile string

// Viper keys. With the "koyeb" env prefix they resolve to
// KOYEB_API_TOKEN and KOYEB_API_URL, the variables the container sets.
const (
	KeyAPIToken = "api_token"
	KeyAPIURL   = "api_url"
)

func APIToken() string {
	return viper.GetString(KeyAPIToken)
}

func APIURL() string {
	return viper.GetString(KeyAPIURL)
}
