package domain

import "time"

type JwtConfiguration struct {
	Key            []byte
	Issuer         string
	ValidateIssuer bool
	ClockSkew      time.Duration
}

type Configuration struct {
	ServerReadTimeoutSeconds  int
	ServerWriteTimeoutSeconds int
	ServerPort                int
	LogLevel                  string
	JwtConfig                 JwtConfiguration
}

// Credential is a statically known user. The password is kept in plain text.
type Credential struct {
	Username string
	Password string
	Role     string
}

type LoginRequest struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
}

type LoginResponse struct {
	User  string `json:"User"`
	Token string `json:"Token"`
}

// WeatherForecast is the mock payload served by the protected endpoint.
// Date is formatted as yyyy-MM-dd.
type WeatherForecast struct {
	Date         string `json:"Date"`
	TemperatureC int    `json:"TemperatureC"`
	Summary      string `json:"Summary"`
	Guid         string `json:"guid"`
}
