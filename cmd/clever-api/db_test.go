package main

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDB_settings(t *testing.T) {
	t.Cleanup(ResetTestDB)

	assert.Equal(t, "", GetDB().GetSetting(SettingEmail))

	GetDB().SetSetting(SettingEmail, "jeppe@example.dk")
	assert.Equal(t, "jeppe@example.dk", GetDB().GetSetting(SettingEmail))

	GetDB().SetSetting(SettingEmail, "other@example.dk")
	assert.Equal(t, "other@example.dk", GetDB().GetSetting(SettingEmail))
}

func TestDB_userSecretEncryptedAtRest(t *testing.T) {
	t.Cleanup(ResetTestDB)

	secret := uuid.NewString()
	GetDB().SetSetting(SettingUserSecret, secret)

	var stored string
	err := GetDB().GetConnection().QueryRow("select value from settings where key = ?", SettingUserSecret).
		Scan(&stored)
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(stored, "c:"))
	assert.NotContains(t, stored, secret)

	assert.Equal(t, secret, GetDB().GetSetting(SettingUserSecret))
}
