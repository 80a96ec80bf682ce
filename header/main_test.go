package header_test

import (
	"log/slog"
	"os"
	"testing"

	"go.uber.org/goleak"

	"github.com/xenocrat/HTTPHeader/header"
	"github.com/xenocrat/HTTPHeader/internal/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// extractOpts logs skipped fields when the tests run verbose.
// HEADER_TEST_LOG=dev switches to the developer logger.
func extractOpts() *header.ExtractOptions {
	var logger *slog.Logger
	if os.Getenv("HEADER_TEST_LOG") == "dev" {
		logger = log.Dev
	} else if testing.Verbose() {
		logger = log.Def
	}
	return &header.ExtractOptions{Logger: logger}
}
