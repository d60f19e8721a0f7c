package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

var dotenvOnce sync.Once

/*
CheckIfEnvVarsPresent loads ./.env (once) and warns about every listed
variable that is still empty afterwards.

It never exits: an absent credential only disables the feature that needs it
(for example, email delivery becomes a logged no-op).
*/
func CheckIfEnvVarsPresent(variableNames ...string) {
	dotenvOnce.Do(func() {
		loadErr := godotenv.Load()
		if loadErr != nil {
			tl.Log(tl.Verbose, palette.CyanDim, "No .env file loaded (%s)", loadErr)
			return
		}
		tl.Log(tl.Info, palette.Cyan, "Loaded environment variables from %s", ".env")
	})

	for _, variableName := range variableNames {
		value := strings.TrimSpace(os.Getenv(variableName))
		if value == "" {
			tl.Log(
				tl.Warning, palette.YellowBold, "Environment variable %s is %s",
				variableName, "not set",
			)
		}
	}
}
