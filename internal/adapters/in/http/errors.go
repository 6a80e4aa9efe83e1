package http

import (
	"errors"
	"fmt"
	"net/http"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/services"
	"harvesthub/internal/generated/servers"
	"harvesthub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// User-facing messages carry English and Urdu text separated by " / ".
const (
	msgNoActor       = "Sign in to continue. / جاری رکھنے کے لیے سائن ان کریں۔"
	msgBadActor      = "Your session is not valid. / آپ کا سیشن درست نہیں ہے۔"
	msgForbidden     = "You are not allowed to do this. / آپ کو اس کی اجازت نہیں ہے۔"
	msgInvalid       = "Please check the submitted values. / براہ کرم درج کردہ معلومات چیک کریں۔"
	msgInvalidState  = "This order cannot be changed in its current state. / اس آرڈر کو موجودہ حالت میں تبدیل نہیں کیا جا سکتا۔"
	msgNotCancelable = "This order cannot be cancelled. / یہ آرڈر منسوخ نہیں کیا جا سکتا۔"
	msgInUse         = "This record is still in use. / یہ ریکارڈ ابھی استعمال میں ہے۔"
	msgConflict      = "Someone else changed this order. Please reload. / کسی اور نے یہ آرڈر تبدیل کر دیا ہے۔ براہ کرم دوبارہ لوڈ کریں۔"
	msgInternal      = "Something went wrong. Please try again later. / کچھ غلط ہو گیا۔ براہ کرم بعد میں دوبارہ کوشش کریں۔"
	msgRouteNotFound = "Page not found. / صفحہ نہیں ملا۔"
)

// entityNames maps NotFound parameter names to display names.
var entityNames = map[string][2]string{
	"crop":         {"Crop", "فصل"},
	"order":        {"Order", "آرڈر"},
	"buyer":        {"Buyer", "خریدار"},
	"farmer":       {"Farmer", "کسان"},
	"notification": {"Notification", "اطلاع"},
}

func notFoundMessage(param string) string {
	names, ok := entityNames[param]
	if !ok {
		names = [2]string{"Record", "ریکارڈ"}
	}
	return fmt.Sprintf("%s not found. / %s نہیں ملا۔", names[0], names[1])
}

func activeOrdersMessage(count int) string {
	return fmt.Sprintf(
		"Cannot delete this crop: %d active order(s) must be cancelled first. / "+
			"یہ فصل حذف نہیں کی جا سکتی: پہلے %d فعال آرڈر منسوخ کریں۔", count, count)
}

// errorResponse maps a core error raised by action onto a status code and body.
// ok is false for errors the core does not classify.
func errorResponse(action string, err error) (servers.Error, bool) {
	var (
		notFound *errs.ObjectNotFoundError
		active   *services.ActiveOrdersExistError
	)

	switch {
	case errors.As(err, &active):
		count := active.Count
		return servers.Error{Code: http.StatusConflict, Message: activeOrdersMessage(count), Count: &count}, true
	case errors.As(err, &notFound):
		return servers.Error{Code: http.StatusNotFound, Message: notFoundMessage(notFound.ParamName)}, true
	case errors.Is(err, errs.ErrObjectNotFound):
		return servers.Error{Code: http.StatusNotFound, Message: notFoundMessage("")}, true
	case errors.Is(err, errs.ErrAccessIsForbidden):
		return servers.Error{Code: http.StatusForbidden, Message: msgForbidden}, true
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return servers.Error{Code: http.StatusConflict, Message: msgConflict}, true
	case errors.Is(err, errs.ErrInvalidState):
		msg := msgInvalidState
		if action == actionCancelOrder {
			msg = msgNotCancelable
		}
		return servers.Error{Code: http.StatusConflict, Message: msg}, true
	case errors.Is(err, errs.ErrConstraintViolation):
		return servers.Error{Code: http.StatusConflict, Message: msgInUse}, true
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return servers.Error{Code: http.StatusBadRequest, Message: msgInvalid + " (" + err.Error() + ")"}, true
	}
	return servers.Error{}, false
}

// fail renders err. Unclassified errors are recorded as diagnostics under action,
// together with the entity the request targeted, and answered with a generic 500.
func (s *Server) fail(c echo.Context, action string, actor *kernel.Actor, entityID *kernel.UUID, err error) error {
	if resp, ok := errorResponse(action, err); ok {
		return c.JSON(resp.Code, resp)
	}

	var actorID *kernel.UUID
	if actor != nil {
		id := actor.ID()
		actorID = &id
	}
	s.recorder.Record(c.Request().Context(), action, actorID, entityID, err)

	return c.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: msgInternal,
	})
}

// badRequest renders a request that could not be turned into a command.
func badRequest(c echo.Context, err error) error {
	if resp, ok := errorResponse("", err); ok && resp.Code == http.StatusBadRequest {
		return c.JSON(resp.Code, resp)
	}
	return c.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: msgInvalid + " (" + err.Error() + ")",
	})
}

// ErrorHandler renders echo's own errors (routing, binding, validation) in the
// API's error shape.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := msgInternal

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch code {
		case http.StatusNotFound:
			message = msgRouteNotFound
		case http.StatusMethodNotAllowed:
			message = http.StatusText(code)
		case http.StatusUnauthorized:
			message = msgNoActor
		case http.StatusBadRequest:
			message = fmt.Sprintf("%s (%v)", msgInvalid, he.Message)
		default:
			if code < http.StatusInternalServerError {
				message = fmt.Sprintf("%v", he.Message)
			}
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, servers.Error{Code: code, Message: message})
}
