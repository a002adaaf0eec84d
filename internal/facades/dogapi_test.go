package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetchRandomImage_Success(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/golden%20retriever/images/random", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","message":"https://images.dog.ceo/breeds/retriever-golden/n02099601_100.jpg"}`))
	}))
	defer upstream.Close()

	facade := NewDogImageFacade(upstream.URL, time.Second)

	image, err := facade.FetchRandomImage(context.Background(), "Golden Retriever")
	assert.NoError(t, err)
	assert.Equal(t, "https://images.dog.ceo/breeds/retriever-golden/n02099601_100.jpg", image)
}

func TestFetchRandomImage_UpstreamErrorPayload(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"Breed not found"}`))
	}))
	defer upstream.Close()

	facade := NewDogImageFacade(upstream.URL, time.Second)

	_, err := facade.FetchRandomImage(context.Background(), "nosuchbreed")
	assert.ErrorIs(t, err, ErrUpstreamResponse)
}

func TestFetchRandomImage_NonSuccessStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	facade := NewDogImageFacade(upstream.URL, time.Second)

	_, err := facade.FetchRandomImage(context.Background(), "husky")
	assert.ErrorIs(t, err, ErrUpstreamResponse)
}

func TestFetchRandomImage_InvalidJSON(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer upstream.Close()

	facade := NewDogImageFacade(upstream.URL, time.Second)

	_, err := facade.FetchRandomImage(context.Background(), "husky")
	assert.ErrorIs(t, err, ErrUpstreamResponse)
}

func TestFetchRandomImage_Timeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"status":"success","message":"late"}`))
	}))
	defer upstream.Close()

	facade := NewDogImageFacade(upstream.URL, 50*time.Millisecond)

	_, err := facade.FetchRandomImage(context.Background(), "husky")
	assert.ErrorIs(t, err, ErrUpstreamTimeout)
}
