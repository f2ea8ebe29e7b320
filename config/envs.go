package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL = "https://ponychallenge.trustpilot.com/pony-challenge/maze"

	DefaultWidth      = 15
	DefaultHeight     = 15
	DefaultDifficulty = 1
)

// Validation errors.
var (
	ErrInvalidDimension  = errors.New("maze dimension out of range")
	ErrInvalidDifficulty = errors.New("difficulty out of range")
	ErrUnknownPlayer     = errors.New("unknown player name")
)

// Limits bounds the parameters accepted for a new maze.
type Limits struct {
	MinSize       int // Smallest accepted width or height
	MaxSize       int // Largest accepted width or height
	MinDifficulty int // Lowest accepted difficulty
	MaxDifficulty int // Highest accepted difficulty
}

// Validate rejects out-of-range dimensions or difficulty and unknown players.
func (l Limits) Validate(width, height, difficulty int, player string) error {
	if min(width, height) < l.MinSize || max(width, height) > l.MaxSize {
		return fmt.Errorf("%w: %dx%d not within [%d, %d]", ErrInvalidDimension, width, height, l.MinSize, l.MaxSize)
	}
	if difficulty < l.MinDifficulty || difficulty > l.MaxDifficulty {
		return fmt.Errorf("%w: %d not within [%d, %d]", ErrInvalidDifficulty, difficulty, l.MinDifficulty, l.MaxDifficulty)
	}
	if !IsPlayer(player) {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
	}
	return nil
}

// Config holds the application's configuration values.
type Config struct {
	APIURL       string        // Base URL of the maze service
	HTTPTimeout  time.Duration // Timeout of a single maze service request
	Limits       Limits        // Accepted maze parameters
	MaxMoves     int           // Upper bound on moves submitted in one run
	EmulatorAddr string        // Listen address of the maze service emulator
	RedisAddr    string        // Redis address for emulator games, empty keeps them in memory
	RedisTTL     time.Duration // Expiration of emulator games stored in Redis
	GinMode      string        // Mode for the Gin framework (e.g., release, debug, test)
}

// Load builds the configuration from the environment.
// It loads environment variables from a .env file when one is present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	var err error
	getInt := func(key string, defaultValue int) int {
		value, parseErr := getEnvAsInt(key, defaultValue)
		if parseErr != nil && err == nil {
			err = parseErr
		}
		return value
	}

	cfg := Config{
		APIURL:      getEnvWithDefault("MAZE_API_URL", DefaultAPIURL),
		HTTPTimeout: time.Duration(getInt("MAZE_HTTP_TIMEOUT_MS", 10000)) * time.Millisecond,
		Limits: Limits{
			MinSize:       getInt("MAZE_MIN_SIZE", 15),
			MaxSize:       getInt("MAZE_MAX_SIZE", 25),
			MinDifficulty: getInt("MAZE_MIN_DIFFICULTY", 0),
			MaxDifficulty: getInt("MAZE_MAX_DIFFICULTY", 10),
		},
		MaxMoves:     getInt("MAZE_MAX_MOVES", 10000),
		EmulatorAddr: getEnvWithDefault("EMULATOR_ADDR", ":8080"),
		RedisAddr:    getEnvWithDefault("REDIS_ADDR", ""),
		RedisTTL:     time.Duration(getInt("REDIS_TTL_SECONDS", 3600)) * time.Second,
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
	}
	if err != nil {
		return Config{}, err
	}

	if cfg.Limits.MinSize <= 0 || cfg.Limits.MinSize > cfg.Limits.MaxSize {
		return Config{}, fmt.Errorf("%w: size range [%d, %d]", ErrInvalidDimension, cfg.Limits.MinSize, cfg.Limits.MaxSize)
	}
	if cfg.Limits.MinDifficulty > cfg.Limits.MaxDifficulty {
		return Config{}, fmt.Errorf("%w: difficulty range [%d, %d]", ErrInvalidDifficulty, cfg.Limits.MinDifficulty, cfg.Limits.MaxDifficulty)
	}
	return cfg, nil
}

// getEnvAsInt retrieves the value of an environment variable as an integer or returns a default value if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
