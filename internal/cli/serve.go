package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/keyring"
	"github.com/julianstephens/commutewell/internal/logger"
	"github.com/julianstephens/commutewell/internal/server"
	"github.com/julianstephens/commutewell/internal/traffic"
)

type ServeCmd struct {
	Port string `short:"p" help:"Port to listen on; defaults to PORT or 8080."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	// Optional .env for PORT / OPENAI_* overrides
	godotenv.Load()

	port := c.Port
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = constants.DefaultServerPort
	}

	srv := server.New(ctx.Store, newAnnotator())
	if err := srv.Seed(); err != nil {
		return fmt.Errorf("failed to seed routes: %w", err)
	}

	fmt.Printf("🚦 Listening on :%s\n", port)
	logger.Info("Server starting", "port", port)
	return http.ListenAndServe(":"+port, srv.Handler())
}

// newAnnotator wires the OpenAI annotator when a key is available from
// the environment or the OS keyring, and otherwise falls back to the
// static explanation text.
func newAnnotator() traffic.Annotator {
	apiKey := os.Getenv(constants.OpenAIKeyEnv)
	if apiKey == "" {
		if key, err := keyring.GetOpenAIKey(); err == nil {
			apiKey = key
		}
	}
	if apiKey == "" {
		logger.Warn("No OpenAI API key configured, predictions use static explanations")
		return traffic.StaticAnnotator{}
	}

	model := os.Getenv(constants.OpenAIModelEnv)
	if model == "" {
		model = constants.DefaultOpenAIModel
	}
	return traffic.NewOpenAIAnnotator(apiKey, model)
}
