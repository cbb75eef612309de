package handlers

import (
	"net/http"
	"sync"

	intconfig "freightcalc/internal/config"
	"freightcalc/internal/repositories"

	"github.com/gin-gonic/gin"
)

var (
	presetKVMu sync.RWMutex
	presetKV   repositories.KVStore
)

// SetPresetKV stores the preset backend chosen at startup so handlers can
// reach it without threading it through every call.
func SetPresetKV(kv repositories.KVStore) {
	presetKVMu.Lock()
	defer presetKVMu.Unlock()
	presetKV = kv
}

func getPresetKV() repositories.KVStore {
	presetKVMu.RLock()
	defer presetKVMu.RUnlock()
	if presetKV != nil {
		return presetKV
	}
	return &repositories.MySQLKV{}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "freightcalc backend running"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}
	if err := intconfig.DB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database ping failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK"})
}
