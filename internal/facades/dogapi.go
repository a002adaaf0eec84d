package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"petshop/internal/logger"
)

// Error variables for image lookup failures. Callers map these to 504 and
// 502 respectively when the lookup is the primary operation; pet creation
// treats any of them as a degraded (empty) image instead.
var (
	ErrUpstreamTimeout  = errors.New("dog api request timed out")
	ErrUpstreamResponse = errors.New("dog api returned an error")
)

// DefaultTimeout bounds the outbound call so a slow upstream cannot hang a request.
const DefaultTimeout = 5 * time.Second

// dogAPIResponse is the dog.ceo payload: {"status":"success","message":"<url>"}
type dogAPIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DogImageFacade fetches a representative photo URL for a breed from the
// dog.ceo API over HTTP.
type DogImageFacade struct {
	client  *http.Client
	baseURL string
}

// NewDogImageFacade creates a facade for the given base URL, e.g.
// "https://dog.ceo/api/breed". A non-positive timeout falls back to DefaultTimeout.
func NewDogImageFacade(baseURL string, timeout time.Duration) *DogImageFacade {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &DogImageFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchRandomImage returns a random image URL for the breed.
func (f *DogImageFacade) FetchRandomImage(ctx context.Context, breed string) (string, error) {
	reqURL := fmt.Sprintf("%s/%s/images/random", f.baseURL, url.PathEscape(strings.ToLower(breed)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamResponse, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			logger.Log.Errorw("dog api request timed out", "url", reqURL)
			return "", ErrUpstreamTimeout
		}
		logger.Log.Errorw("dog api request failed", "url", reqURL, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstreamResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("dog api returned non-success status", "url", reqURL, "status", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrUpstreamResponse, resp.StatusCode)
	}

	var payload dogAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Log.Errorw("failed to decode dog api response", "url", reqURL, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstreamResponse, err)
	}

	if payload.Status != "success" || strings.TrimSpace(payload.Message) == "" {
		logger.Log.Errorw("dog api reported failure", "url", reqURL, "status", payload.Status)
		return "", fmt.Errorf("%w: status %q", ErrUpstreamResponse, payload.Status)
	}

	image := strings.TrimSpace(payload.Message)
	logger.Log.Infow("fetched pet image", "breed", breed, "image", image)
	return image, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
