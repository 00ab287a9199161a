package check

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ijalalfrz/airportgap-client/internal/app/dto"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/restclient"
)

const (
	notFoundDetail     = "The page you requested could not be found"
	unauthorisedDetail = "You are not authorized to perform the requested action."
)

func expectStatus(resp *restclient.Response, want int) error {
	if resp.StatusCode != want {
		return fmt.Errorf("[%s]%s: status %d, want %d: %s", resp.Method, resp.URL, resp.StatusCode, want, resp.Body)
	}

	return nil
}

// expectError checks that the body is an error envelope whose first entry
// matches status, title and detail exactly.
func expectError(resp *restclient.Response, status, title, detail string) error {
	list, err := dto.DecodeErrors(resp.Body)
	if err != nil {
		return fmt.Errorf("decode error envelope: %w", err)
	}

	if len(list.Errors) == 0 {
		return fmt.Errorf("error envelope is empty")
	}

	want := dto.Error{Status: status, Title: title, Detail: detail}
	if got := list.Errors[0]; got != want {
		return fmt.Errorf("error %+v, want %+v", got, want)
	}

	return nil
}

func expectNotFound(resp *restclient.Response) error {
	if err := expectStatus(resp, http.StatusNotFound); err != nil {
		return err
	}

	return expectError(resp, strconv.Itoa(http.StatusNotFound), "Not Found", notFoundDetail)
}
