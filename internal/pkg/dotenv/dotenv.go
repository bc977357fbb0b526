package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultFiles локальный оверлей читается первым, godotenv не перетирает уже выставленные переменные.
var DefaultFiles = []string{".env.local", ".env"}

// Load подгружает файлы по порядку, отсутствующие пропускает. Возвращает реально прочитанные.
func Load(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = DefaultFiles
	}

	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("stat %s: %w", file, err)
		}

		if err := godotenv.Load(file); err != nil {
			return loaded, fmt.Errorf("load %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}

	return loaded, nil
}

// ParseFlags разбирает флаги процесса, -port перекрывает envName (PORT у сервиса,
// KAFKA_HTTP_HEALTHCHECK_PORT у воркера). Возвращает позиционные аргументы.
func ParseFlags(set *flag.FlagSet, args []string, envName string) ([]string, error) {
	var port string
	set.StringVar(&port, "port", "", fmt.Sprintf("port (overrides %s environment variable)", envName))

	if err := set.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if port != "" {
		if err := os.Setenv(envName, port); err != nil {
			return nil, fmt.Errorf("failed to set %s environment variable: %w", envName, err)
		}
	}

	return set.Args(), nil
}
