package main

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"sync"
)

type Config struct {
	DBFile       string
	BaseURL      string
	Email        string
	FirstName    string
	LastName     string
	CryptKey     string
	PollInterval int
	DebugLog     bool
}

var _configInstance *Config
var _configOnce sync.Once

func GetConfig() *Config {
	_configOnce.Do(func() {
		_configInstance = &Config{}
		_configInstance.ReadConfig()
	})
	return _configInstance
}

func (c *Config) ReadConfig() {
	c.DBFile = c.getEnv("DB_FILE", "/tmp/clever.db")
	c.BaseURL = c.getEnv("CLEVER_BASE_URL", "")
	c.Email = c.getEnv("CLEVER_EMAIL", "")
	c.FirstName = c.getEnv("CLEVER_FIRST_NAME", "")
	c.LastName = c.getEnv("CLEVER_LAST_NAME", "")
	c.CryptKey = c.getEnv("CRYPT_KEY", "")
	interval, err := strconv.Atoi(c.getEnv("POLL_INTERVAL", "15"))
	if err != nil {
		log.Panicln("POLL_INTERVAL must be numeric")
	}
	c.PollInterval = interval
	c.DebugLog = (c.getEnv("DEBUG_LOG", "0") == "1")
}

func (c *Config) Print() {
	s, _ := json.MarshalIndent(c, "", "\t")
	log.Println("Using config:\n" + string(s))
}

func (c *Config) getEnv(key, defaultValue string) string {
	res := os.Getenv(key)
	if res == "" {
		return defaultValue
	}
	return res
}
