package tests

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	host = "0.0.0.0:8082"
)

// imageSource serves deterministic PNG payloads the vault can fetch, standing
// in for the time-limited URLs of the generation provider.
type imageSource struct {
	mu     sync.Mutex
	images map[string][]byte
	srv    *httptest.Server
}

func newImageSource(t *testing.T) *imageSource {
	s := &imageSource{images: map[string][]byte{}}

	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		data, ok := s.images[r.URL.Path]
		s.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))

	t.Cleanup(s.srv.Close)

	return s
}

func (s *imageSource) add(t *testing.T, path string, seed uint8) string {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: seed, G: uint8(x), B: uint8(y), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	s.mu.Lock()
	s.images[path] = buf.Bytes()
	s.mu.Unlock()

	return s.srv.URL + path
}

func TestFullVersionLifecycle(t *testing.T) {
	u := url.URL{Scheme: "http", Host: host}
	e := httpexpect.Default(t, u.String())

	source := newImageSource(t)
	subject := "nft-" + uuid.NewString()

	firstURL := source.add(t, "/v1.png", 1)
	secondURL := source.add(t, "/v2.png", 2)

	t.Run("First Version Becomes Current", func(t *testing.T) {
		resp := e.POST("/subjects/" + subject + "/images").
			WithJSON(map[string]string{"source_url": firstURL, "prompt": "a wizard"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("deduplicated").Boolean().IsFalse()
		resp.Value("record").Object().Value("status").String().IsEqual("stored")
		resp.Value("record").Object().Value("is_current").Boolean().IsTrue()

		current := e.GET("/subjects/" + subject + "/images/current").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		current.Value("record").Object().Value("subject_id").String().IsEqual(subject)
		current.Value("record").Object().Value("status").String().IsEqual("stored")
	})

	var firstRecordID string

	t.Run("Second Version Flips Currency", func(t *testing.T) {
		firstRecordID = e.GET("/subjects/" + subject + "/images/current").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("record").Object().Value("id").String().Raw()

		resp := e.POST("/subjects/" + subject + "/images").
			WithJSON(map[string]string{"source_url": secondURL}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("deduplicated").Boolean().IsFalse()

		newCurrentID := e.GET("/subjects/" + subject + "/images/current").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("record").Object().Value("id").String().Raw()

		require.NotEqual(t, firstRecordID, newCurrentID)

		history := e.GET("/subjects/" + subject + "/images").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		records := history.Value("records").Array()
		records.Length().IsEqual(2)
		records.Value(0).Object().Value("is_current").Boolean().IsTrue()
		records.Value(1).Object().Value("id").String().IsEqual(firstRecordID)
		records.Value(1).Object().Value("is_current").Boolean().IsFalse()
	})

	t.Run("Identical Bytes Deduplicate", func(t *testing.T) {
		currentBefore := e.GET("/subjects/" + subject + "/images/current").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("record").Object().Value("id").String().Raw()

		resp := e.POST("/subjects/" + subject + "/images").
			WithJSON(map[string]string{"source_url": secondURL}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("deduplicated").Boolean().IsTrue()
		resp.Value("record").Object().Value("id").String().IsEqual(currentBefore)

		// The dedupe attempt stays in the history as a downloaded row, but no
		// new stored record appears.
		history := e.GET("/subjects/" + subject + "/images").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		stored := 0
		for _, raw := range history.Value("records").Array().Iter() {
			if raw.Object().Value("status").String().Raw() == "stored" {
				stored++
			}
		}
		require.Equal(t, 2, stored)
	})

	t.Run("Fetch Failure Leaves Current Intact", func(t *testing.T) {
		currentBefore := e.GET("/subjects/" + subject + "/images/current").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("record").Object().Value("id").String().Raw()

		e.POST("/subjects/" + subject + "/images").
			WithJSON(map[string]string{"source_url": source.srv.URL + "/missing.png"}).
			Expect().
			Status(http.StatusBadGateway)

		currentAfter := e.GET("/subjects/" + subject + "/images/current").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("record").Object().Value("id").String().Raw()

		require.Equal(t, currentBefore, currentAfter)

		failed := 0
		history := e.GET("/subjects/" + subject + "/images").
			Expect().
			Status(http.StatusOK).
			JSON().Object()
		for _, raw := range history.Value("records").Array().Iter() {
			if raw.Object().Value("status").String().Raw() == "failed" {
				failed++
			}
		}
		require.Equal(t, 1, failed)
	})

	t.Run("Mark Historical Record Current", func(t *testing.T) {
		e.PUT("/subjects/" + subject + "/images/" + firstRecordID + "/current").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("record").Object().Value("is_current").Boolean().IsTrue()

		current := e.GET("/subjects/" + subject + "/images/current").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		current.Value("record").Object().Value("id").String().IsEqual(firstRecordID)

		// Exactly one current record in the history afterwards.
		currents := 0
		history := e.GET("/subjects/" + subject + "/images").
			Expect().
			Status(http.StatusOK).
			JSON().Object()
		for _, raw := range history.Value("records").Array().Iter() {
			if raw.Object().Value("is_current").Boolean().Raw() {
				currents++
			}
		}
		require.Equal(t, 1, currents)
	})
}

func TestGetCurrentNotFound(t *testing.T) {
	u := url.URL{Scheme: "http", Host: host}
	e := httpexpect.Default(t, u.String())

	e.GET("/subjects/nft-" + uuid.NewString() + "/images/current").
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().
		Value("error").String().Contains("no current version")
}

func TestMarkCurrentUnknownRecord(t *testing.T) {
	u := url.URL{Scheme: "http", Host: host}
	e := httpexpect.Default(t, u.String())

	e.PUT("/subjects/nft-42/images/" + uuid.NewString() + "/current").
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().
		Value("error").String().Contains("not found")
}

func TestRequestVersionValidation(t *testing.T) {
	u := url.URL{Scheme: "http", Host: host}
	e := httpexpect.Default(t, u.String())

	e.POST("/subjects/nft-42/images").
		WithJSON(map[string]string{"prompt": "no url"}).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().
		Value("error").String().Contains("SourceURL")
}
