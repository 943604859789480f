package main

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"io"
	"log"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

const (
	SettingEmail      = "email"
	SettingUserSecret = "user_secret"
)

type DB struct {
	Connection *sql.DB
}

var _DBInstance *DB
var _DBOnce sync.Once

func GetDB() *DB {
	_DBOnce.Do(func() {
		_DBInstance = &DB{}
	})
	return _DBInstance
}

func (db *DB) Connect() {
	log.Println("Connecting to database...")
	con, err := sql.Open("sqlite", GetConfig().DBFile+"?_pragma=busy_timeout=10000&_pragma=journal_mode=WAL")
	if err != nil {
		log.Panicln(err)
	}
	db.Connection = con
}

func (db *DB) GetConnection() *sql.DB {
	return db.Connection
}

func (db *DB) ResetDBStructure() {
	log.Println("Resetting database...")
	_, err := db.GetConnection().Exec(`
drop table if exists settings;
`)
	if err != nil {
		log.Panicln(err)
	}
}

func (db *DB) InitDBStructure() {
	log.Println("Initializing database structure...")
	_, err := db.GetConnection().Exec(`
create table if not exists settings(key text primary key, value text default '');
`)
	if err != nil {
		log.Panicln(err)
	}
}

func (db *DB) SetSetting(key, value string) {
	if key == SettingUserSecret && GetConfig().CryptKey != "" {
		value = "c:" + db.encrypt(value)
	}
	_, err := db.GetConnection().Exec("replace into settings values(?, ?)",
		key, value)
	if err != nil {
		log.Panicln(err)
	}
}

func (db *DB) GetSetting(key string) string {
	var value string
	err := db.GetConnection().QueryRow("select value from settings where key = ?", key).
		Scan(&value)
	if err != nil {
		log.Println(err)
		return ""
	}
	if key == SettingUserSecret && GetConfig().CryptKey != "" && strings.Index(value, "c:") == 0 {
		value = db.decrypt(value[2:])
	}
	return value
}

func (db *DB) encrypt(s string) string {
	aes, err := aes.NewCipher([]byte(GetConfig().CryptKey))
	if err != nil {
		panic(err)
	}
	gcm, err := cipher.NewGCM(aes)
	if err != nil {
		panic(err)
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		panic(err)
	}
	ciphertext := gcm.Seal(nonce, nonce, []byte(s), nil)
	res := base64.StdEncoding.EncodeToString(ciphertext)
	return res
}

func (db *DB) decrypt(s string) string {
	ciphertext, _ := base64.StdEncoding.Strict().DecodeString(s)
	aes, err := aes.NewCipher([]byte(GetConfig().CryptKey))
	if err != nil {
		panic(err)
	}
	gcm, err := cipher.NewGCM(aes)
	if err != nil {
		panic(err)
	}
	nonceSize := gcm.NonceSize()
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := gcm.Open(nil, []byte(nonce), []byte(ciphertext), nil)
	if err != nil {
		panic(err)
	}

	return string(plaintext)
}
