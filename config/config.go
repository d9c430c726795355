package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/DavidOG03/crack-analyst/internal/infrastructure/vision"
)

type Config struct {
	HTTPAddr      string
	TelegramToken string
	LogLevel      string

	Pipeline vision.Params
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	pipeline := vision.DefaultParams()
	pipeline.ScaleKernels = getEnvAsIntList("SCALE_KERNELS", pipeline.ScaleKernels)
	pipeline.MinComponentArea = getEnvAsInt("MIN_COMPONENT_AREA", pipeline.MinComponentArea)
	pipeline.MinElongation = getEnvAsFloat("MIN_ELONGATION", pipeline.MinElongation)
	pipeline.MinSkeletonLength = getEnvAsFloat("MIN_SKELETON_LENGTH", pipeline.MinSkeletonLength)
	pipeline.MaxWidthStdDev = getEnvAsFloat("MAX_WIDTH_STDDEV", pipeline.MaxWidthStdDev)
	pipeline.MaxDensity = getEnvAsFloat("MAX_DENSITY", pipeline.MaxDensity)
	pipeline.OrientationAspect = getEnvAsFloat("ORIENTATION_ASPECT", pipeline.OrientationAspect)
	pipeline.CLAHEClip = getEnvAsFloat("CLAHE_CLIP", pipeline.CLAHEClip)

	cfg := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8000"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Pipeline:      pipeline,
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsIntList(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var list []int
	for _, part := range strings.Split(value, ",") {
		intValue, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return defaultValue
		}
		list = append(list, intValue)
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
