package server

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrResponse renderer type for handling all sorts of errors.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newErrResponse(err error, status int) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		ErrorText:      err.Error(),
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return newErrResponse(err, http.StatusBadRequest)
}

func ErrInternalServerError(err error) render.Renderer {
	return newErrResponse(err, http.StatusInternalServerError)
}

// ErrBadGateway reports a failed upstream fetch.
func ErrBadGateway(err error) render.Renderer {
	return newErrResponse(err, http.StatusBadGateway)
}

// ErrUnavailable is answered while no summary has been loaded.
func ErrUnavailable(err error) render.Renderer {
	return newErrResponse(err, http.StatusServiceUnavailable)
}
