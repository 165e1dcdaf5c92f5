package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/services"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/web/server"
)

func newTestMux(t *testing.T) (*http.ServeMux, *services.Simulator, string) {
	t.Helper()
	simulator, err := services.NewSimulator(models.SimulatorConfig{
		PageSize:   4096,
		MemorySize: 16384,
		Algorithm:  models.FIFO,
		RandomSeed: 7,
	})
	if err != nil {
		t.Fatalf("Failed to create simulator: %v", err)
	}
	dumpPath := t.TempDir()
	return RegisterRoutes(simulator, dumpPath), simulator, dumpPath
}

func doJson(t *testing.T, mux http.Handler, method string, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.NewDecoder(recorder.Body).Decode(target); err != nil {
		t.Fatalf("Failed to decode response %q: %v", recorder.Body.String(), err)
	}
}

func TestHandshake(t *testing.T) {
	mux, _, _ := newTestMux(t)

	recorder := doJson(t, mux, http.MethodGet, "/memoria", nil)
	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Memoria en funcionamiento") {
		t.Errorf("Unexpected handshake body: %s", recorder.Body.String())
	}
}

func TestCreateProcessHandler(t *testing.T) {
	mux, _, _ := newTestMux(t)

	recorder := doJson(t, mux, http.MethodPost, "/memoria/proceso", ProcessRequest{PID: 1, Size: 10000})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var process models.Process
	decodeBody(t, recorder, &process)
	if process.PID != 1 || process.PageCount != 3 {
		t.Errorf("Expected PID 1 with 3 pages, got %+v", process)
	}

	cases := []struct {
		request  ProcessRequest
		expected int
	}{
		{ProcessRequest{PID: 1, Size: 4096}, http.StatusConflict},
		{ProcessRequest{PID: 2, Size: 0}, http.StatusBadRequest},
	}
	for _, c := range cases {
		recorder := doJson(t, mux, http.MethodPost, "/memoria/proceso", c.request)
		if recorder.Code != c.expected {
			t.Errorf("Expected status %d for %+v, got %d", c.expected, c.request, recorder.Code)
		}
	}
}

func TestCreateProcessHandler_InvalidBody(t *testing.T) {
	mux, _, _ := newTestMux(t)

	request := httptest.NewRequest(http.MethodPost, "/memoria/proceso", strings.NewReader("{pid"))
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", recorder.Code)
	}
}

func TestTranslateHandler(t *testing.T) {
	mux, simulator, _ := newTestMux(t)
	doJson(t, mux, http.MethodPost, "/memoria/proceso", ProcessRequest{PID: 1, Size: 10000})

	recorder := doJson(t, mux, http.MethodPost, "/memoria/traducir", models.Access{PID: 1, Address: 4100})
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var translation models.Translation
	decodeBody(t, recorder, &translation)
	if !translation.PageFault || translation.Page != 1 || translation.Frame != 0 || translation.PhysicalAddress != 4 {
		t.Errorf("Unexpected translation %+v", translation)
	}
	if simulator.CurrentTime() != 1 {
		t.Errorf("Expected clock 1, got %d", simulator.CurrentTime())
	}

	cases := []struct {
		access   models.Access
		expected int
	}{
		{models.Access{PID: 9, Address: 0}, http.StatusNotFound},
		{models.Access{PID: 1, Address: 50000}, http.StatusBadRequest},
		{models.Access{PID: 1, Address: -1}, http.StatusBadRequest},
	}
	for _, c := range cases {
		recorder := doJson(t, mux, http.MethodPost, "/memoria/traducir", c.access)
		if recorder.Code != c.expected {
			t.Errorf("Expected status %d for %+v, got %d", c.expected, c.access, recorder.Code)
		}
		var response server.ErrorResponse
		decodeBody(t, recorder, &response)
		if response.Error == "" {
			t.Errorf("Expected error message for %+v", c.access)
		}
	}
	if simulator.CurrentTime() != 1 {
		t.Errorf("Expected failed accesses not to advance the clock, got %d", simulator.CurrentTime())
	}
}

func TestRunHandler(t *testing.T) {
	mux, _, _ := newTestMux(t)
	doJson(t, mux, http.MethodPost, "/memoria/proceso", ProcessRequest{PID: 1, Size: 10000})

	accesses := []models.Access{{PID: 1, Address: 0}, {PID: 2, Address: 0}, {PID: 1, Address: 0}}
	recorder := doJson(t, mux, http.MethodPost, "/memoria/corrida", accesses)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var result models.RunResult
	decodeBody(t, recorder, &result)
	if len(result.Translations) != 2 || len(result.Failures) != 1 {
		t.Errorf("Expected 2 translations and 1 failure, got %+v", result)
	}
	if result.Failures[0].Index != 1 || result.Failures[0].Reason == "" {
		t.Errorf("Expected failure at index 1 with reason, got %+v", result.Failures[0])
	}
}

func TestAlgorithmHandlers(t *testing.T) {
	mux, simulator, _ := newTestMux(t)

	recorder := doJson(t, mux, http.MethodPost, "/memoria/algoritmo", AlgorithmRequest{Algorithm: "lru"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	if simulator.Algorithm() != models.LRU {
		t.Errorf("Expected LRU, got %s", simulator.Algorithm())
	}

	recorder = doJson(t, mux, http.MethodPost, "/memoria/algoritmo", AlgorithmRequest{Algorithm: "CLOCK"})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for CLOCK, got %d", recorder.Code)
	}

	recorder = doJson(t, mux, http.MethodGet, "/memoria/algoritmo", nil)
	var response AlgorithmResponse
	decodeBody(t, recorder, &response)
	if response.Algorithm != models.LRU {
		t.Errorf("Expected LRU to be kept after rejected change, got %s", response.Algorithm)
	}
}

func TestFramesAndStatsHandlers(t *testing.T) {
	mux, _, _ := newTestMux(t)
	doJson(t, mux, http.MethodPost, "/memoria/proceso", ProcessRequest{PID: 1, Size: 10000})

	recorder := doJson(t, mux, http.MethodGet, "/memoria/estadisticas", nil)
	var stats models.Stats
	decodeBody(t, recorder, &stats)
	if stats.TotalAccesses != 0 || stats.FaultRate != nil {
		t.Errorf("Expected empty stats with undefined rate, got %+v", stats)
	}

	doJson(t, mux, http.MethodPost, "/memoria/traducir", models.Access{PID: 1, Address: 0})
	doJson(t, mux, http.MethodPost, "/memoria/traducir", models.Access{PID: 1, Address: 10})

	recorder = doJson(t, mux, http.MethodGet, "/memoria/frames", nil)
	var frames FramesResponse
	decodeBody(t, recorder, &frames)
	if frames.Free != 3 || len(frames.Frames) != 4 {
		t.Errorf("Expected 3 free of 4 frames, got %d of %d", frames.Free, len(frames.Frames))
	}
	if frames.Frames[0].Owner == nil || frames.Frames[0].Owner.PID != 1 {
		t.Errorf("Expected frame 0 owned by PID 1, got %+v", frames.Frames[0])
	}

	recorder = doJson(t, mux, http.MethodGet, "/memoria/estadisticas", nil)
	stats = models.Stats{}
	decodeBody(t, recorder, &stats)
	if stats.TotalAccesses != 2 || stats.PageFaults != 1 || stats.FaultRate == nil || *stats.FaultRate != 50 {
		t.Errorf("Expected 2 accesses, 1 fault and 50%% rate, got %+v", stats)
	}
}

func TestProcessesHandler(t *testing.T) {
	mux, _, _ := newTestMux(t)
	doJson(t, mux, http.MethodPost, "/memoria/proceso", ProcessRequest{PID: 2, Size: 8192})
	doJson(t, mux, http.MethodPost, "/memoria/proceso", ProcessRequest{PID: 1, Size: 100})

	recorder := doJson(t, mux, http.MethodGet, "/memoria/procesos", nil)
	var processes []models.Process
	decodeBody(t, recorder, &processes)
	if len(processes) != 2 || processes[0].PID != 1 || processes[1].PID != 2 {
		t.Errorf("Expected processes sorted by PID, got %+v", processes)
	}

	recorder = doJson(t, mux, http.MethodGet, "/memoria/procesos?pid=2", nil)
	var process models.Process
	decodeBody(t, recorder, &process)
	if process.PageCount != 2 {
		t.Errorf("Expected 2 pages for PID 2, got %d", process.PageCount)
	}

	if recorder := doJson(t, mux, http.MethodGet, "/memoria/procesos?pid=5", nil); recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", recorder.Code)
	}
	if recorder := doJson(t, mux, http.MethodGet, "/memoria/procesos?pid=abc", nil); recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", recorder.Code)
	}
}

func TestDumpHandler(t *testing.T) {
	mux, _, _ := newTestMux(t)
	doJson(t, mux, http.MethodPost, "/memoria/proceso", ProcessRequest{PID: 1, Size: 10000})

	recorder := doJson(t, mux, http.MethodPost, "/memoria/dump", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var response DumpResponse
	decodeBody(t, recorder, &response)
	if _, err := os.Stat(response.Path); err != nil {
		t.Errorf("Expected dump file at %s, got: %v", response.Path, err)
	}

	if recorder := doJson(t, mux, http.MethodPost, "/memoria/dump?pid=3", nil); recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown PID, got %d", recorder.Code)
	}
}

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		models.ErrProcessNotFound:      http.StatusNotFound,
		models.ErrPageOutOfBounds:      http.StatusBadRequest,
		models.ErrInvalidAddress:       http.StatusBadRequest,
		models.ErrInvalidSize:          http.StatusBadRequest,
		models.ErrUnsupportedAlgorithm: http.StatusBadRequest,
		models.ErrDuplicatePID:         http.StatusConflict,
		models.ErrInconsistentState:    http.StatusInternalServerError,
	}
	for err, expected := range cases {
		if status := statusFor(err); status != expected {
			t.Errorf("Expected %d for %v, got %d", expected, err, status)
		}
	}
}

func TestMemoryConfigHandler_ReportsCurrentAlgorithm(t *testing.T) {
	mux, _, _ := newTestMux(t)

	previous := models.MemoryConfig
	models.MemoryConfig = &models.Config{PortMemory: 8002, PageSize: 4096, MemorySize: 16384, Replacement: "FIFO", LogLevel: "INFO"}
	t.Cleanup(func() { models.MemoryConfig = previous })

	doJson(t, mux, http.MethodPost, "/memoria/algoritmo", AlgorithmRequest{Algorithm: "LRU"})

	recorder := doJson(t, mux, http.MethodGet, "/config/memoria", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	var config models.Config
	decodeBody(t, recorder, &config)
	if config.Replacement != "LRU" {
		t.Errorf("Expected replacement LRU after switch, got %s", config.Replacement)
	}
	if config.PortMemory != 8002 || config.PageSize != 4096 {
		t.Errorf("Expected the rest of the config to be kept, got %+v", config)
	}
	if models.MemoryConfig.Replacement != "FIFO" {
		t.Errorf("Expected startup config untouched, got %s", models.MemoryConfig.Replacement)
	}
}
