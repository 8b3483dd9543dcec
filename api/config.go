package api

import (
	"sync"
	"time"

	"github.com/simantaparida/featurevote/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
}

type StorageConfig struct {
	Driver            string
	TableNameSessions string
	TableNamePlayers  string
	TableNameFeatures string
	TableNameVotes    string
	Timeout           time.Duration
}

type ServerConfig struct {
	Port int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			Driver:            viper.GetString("storage.Driver"),
			TableNameSessions: viper.GetString("storage.TableNameSessions"),
			TableNamePlayers:  viper.GetString("storage.TableNamePlayers"),
			TableNameFeatures: viper.GetString("storage.TableNameFeatures"),
			TableNameVotes:    viper.GetString("storage.TableNameVotes"),
			Timeout:           viper.GetDuration("storage.Timeout"),
		},
		ServerConfig: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}
