// config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

var (
	Port          string
	MongoURI      string
	DatabaseName  string
	JWTKey        []byte
	JWTExpiration time.Duration

	// MaxActiveCases is the number of active assignments that counts as a
	// fully loaded attorney. The validator rejects teams containing anyone
	// at or above it and the workload dashboard treats it as 100%.
	MaxActiveCases int
)

func LoadConfig() {
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017"
	}

	DatabaseName = os.Getenv("DB_NAME")
	if DatabaseName == "" {
		DatabaseName = "novisapp"
	}

	JWTKey = []byte(os.Getenv("JWT_SECRET"))
	if len(JWTKey) == 0 {
		JWTKey = []byte("secret")
	}

	expireStr := os.Getenv("JWT_EXPIRE")
	dur := 24 * time.Hour
	if expireStr != "" {
		if expireStr == "7d" {
			dur = 7 * 24 * time.Hour
		} else {
			var err error
			dur, err = time.ParseDuration(expireStr)
			if err != nil {
				log.Printf("Invalid JWT_EXPIRE: %s, using 24h", expireStr)
				dur = 24 * time.Hour
			}
		}
	}
	JWTExpiration = dur

	MaxActiveCases = 10
	if capStr := os.Getenv("MAX_ACTIVE_CASES"); capStr != "" {
		n, err := strconv.Atoi(capStr)
		if err != nil || n <= 0 {
			log.Printf("Invalid MAX_ACTIVE_CASES: %s, using 10", capStr)
		} else {
			MaxActiveCases = n
		}
	}
}
