package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// New setup error handler middleware. Platform error kinds are translated to
// HTTP statuses; anything unrecognized is redacted as a 500.
func New() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if status, ok := statusFromKind(err); ok {
			return errors.WithStack(ctx.Status(status).JSON(fiber.Map{
				"error": kindMessage(err),
			}))
		}
		if e := new(errs.PublicError); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": e.Message(),
			}))
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).JSON(fiber.Map{
				"error": e.Error(),
			}))
		}
		logger.ErrorContext(ctx.UserContext(), "Something went wrong, api error",
			slogx.String("event", "api_error"),
			slogx.Error(err),
		)
		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		}))
	}
}

func statusFromKind(err error) (int, bool) {
	switch {
	case errors.Is(err, errs.IncompleteInput):
		return http.StatusBadRequest, true
	case errors.Is(err, errs.NotFound):
		return http.StatusNotFound, true
	case errors.Is(err, errs.NotConnected):
		return http.StatusServiceUnavailable, true
	case errors.Is(err, errs.StorageUnavailable),
		errors.Is(err, errs.TransactionRejected),
		errors.Is(err, errs.InconsistentReceipt):
		return http.StatusBadGateway, true
	case errors.Is(err, errs.ConfirmationTimeout):
		return http.StatusGatewayTimeout, true
	}
	return 0, false
}

func kindMessage(err error) string {
	if e := new(errs.PublicError); errors.As(err, &e) {
		return e.Message()
	}
	return err.Error()
}
