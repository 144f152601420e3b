package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load читает переменные из файлов (по умолчанию .env), не перетирая уже
// выставленные в окружении. Флаг -port имеет приоритет над PORT.
func Load(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}

	portFlag := flag.Lookup("port")
	if portFlag == nil {
		flag.String("port", "", "Server port (overrides PORT environment variable)")
		portFlag = flag.Lookup("port")
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	if port := portFlag.Value.String(); port != "" {
		if err := os.Setenv("PORT", port); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
