package config

import (
	"fmt"
	"strings"
	"time"

	"aggregat4/jwttoken/internal/domain"
	"aggregat4/jwttoken/internal/token"
	"aggregat4/jwttoken/pkg/crypto"

	"github.com/kirsle/configdir"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override file values.
// A double underscore separates path segments, e.g. JWTTOKEN_JWT__Key.
// Keys are case-insensitive, both in the file and in the environment.
const EnvPrefix = "JWTTOKEN_"

func GetDefaultConfigPath() string {
	return configdir.LocalConfig("jwttoken") + "/jwttoken.json"
}

// ReadConfig loads the JSON file at configFileLocation, applies environment overrides and validates the result.
func ReadConfig(configFileLocation string) (domain.Configuration, error) {
	fileValues := koanf.New(".")
	if err := fileValues.Load(file.Provider(configFileLocation), json.Parser()); err != nil {
		return domain.Configuration{}, fmt.Errorf("config: loading %s: %w", configFileLocation, err)
	}
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(lowercaseKeys(fileValues), "."), nil); err != nil {
		return domain.Configuration{}, fmt.Errorf("config: loading %s: %w", configFileLocation, err)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return domain.Configuration{}, fmt.Errorf("config: loading environment: %w", err)
	}
	return LoadConfig(k)
}

func envKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, EnvPrefix), "__", "."))
}

// lowercaseKeys flattens k into a map whose key paths are all lowercase.
func lowercaseKeys(k *koanf.Koanf) map[string]any {
	values := make(map[string]any)
	for key, value := range k.All() {
		values[strings.ToLower(key)] = value
	}
	return values
}

// LoadConfig builds the configuration from already loaded values. Key paths are matched case-insensitively.
func LoadConfig(k *koanf.Koanf) (domain.Configuration, error) {
	lower := koanf.New(".")
	if err := lower.Load(confmap.Provider(lowercaseKeys(k), "."), nil); err != nil {
		return domain.Configuration{}, fmt.Errorf("config: normalizing keys: %w", err)
	}
	k = lower

	serverReadTimeoutSeconds := k.Int("serverreadtimeoutseconds")
	if serverReadTimeoutSeconds == 0 {
		serverReadTimeoutSeconds = 5
	}
	serverWriteTimeoutSeconds := k.Int("serverwritetimeoutseconds")
	if serverWriteTimeoutSeconds == 0 {
		serverWriteTimeoutSeconds = 10
	}
	serverPort := k.Int("serverport")
	if serverPort == 0 {
		serverPort = 1323
	}
	logLevel := k.String("loglevel")
	if logLevel == "" {
		logLevel = "information"
	}

	key, err := crypto.SymmetricKey(k.String("jwt.key"))
	if err != nil {
		return domain.Configuration{}, fmt.Errorf("config: JWT.Key: %w: %w", token.ErrMissingSigningKey, err)
	}
	validateIssuer := true
	if k.Exists("jwt.validateissuer") {
		validateIssuer = k.Bool("jwt.validateissuer")
	}
	clockSkewSeconds := k.Int("jwt.clockskewseconds")
	if clockSkewSeconds < 0 {
		return domain.Configuration{}, fmt.Errorf("config: JWT.clockskewseconds must not be negative, got %d", clockSkewSeconds)
	}

	return domain.Configuration{
		ServerReadTimeoutSeconds:  serverReadTimeoutSeconds,
		ServerWriteTimeoutSeconds: serverWriteTimeoutSeconds,
		ServerPort:                serverPort,
		LogLevel:                  logLevel,
		JwtConfig: domain.JwtConfiguration{
			Key:            key,
			Issuer:         k.String("jwt.issuer"),
			ValidateIssuer: validateIssuer,
			ClockSkew:      time.Duration(clockSkewSeconds) * time.Second,
		},
	}, nil
}
