package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chemfetch/sds-parser/internal/common"
	"github.com/chemfetch/sds-parser/internal/extract"
	"github.com/chemfetch/sds-parser/internal/ingest"
	"github.com/chemfetch/sds-parser/internal/register"
)

// Service wires the extraction engine behind the HTTP surface. The engine
// itself is stateless; the only shared mutable resource is the register
// store, which serializes its own appends.
type Service struct {
	Logger    *zap.Logger
	Cfg       common.ServerConfig
	Assembler *extract.Assembler
	Store     *register.Store
	Extractor *ingest.Extractor
}

func NewService(logger *zap.Logger, cfg common.ServerConfig, asm *extract.Assembler, store *register.Store, ext *ingest.Extractor) *Service {
	return &Service{Logger: logger, Cfg: cfg, Assembler: asm, Store: store, Extractor: ext}
}

// Router builds the HTTP mux for the service.
func (s *Service) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/parse-sds", s.handleParseSDS).Methods(http.MethodPost)
	r.HandleFunc("/health/ocr", s.handleOCRHealth).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// ParseResponse is the JSON body returned for a successful parse.
type ParseResponse struct {
	Hash    string            `json:"hash"`
	Record  map[string]string `json:"record"`
	CSVPath string            `json:"csv_path"`
	Outcome string            `json:"outcome"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Service) handleParseSDS(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := uuid.NewString()
	log := s.Logger.With(zap.String("request_id", reqID))

	r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "multipart field 'file' is required", "bad_request")
		return
	}
	defer file.Close()

	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		s.fail(w, http.StatusBadRequest, "only PDF files are supported", "bad_request")
		return
	}

	tmp, err := os.CreateTemp("", "sds_upload_*.pdf")
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "buffer upload: "+err.Error(), "internal")
		return
	}
	defer os.Remove(tmp.Name())

	hasher := sha256.New()
	size, err := io.Copy(tmp, io.TeeReader(file, hasher))
	closeErr := tmp.Close()
	if err != nil || closeErr != nil {
		s.fail(w, http.StatusInternalServerError, "buffer upload failed", "internal")
		return
	}
	if size < 1000 {
		s.fail(w, http.StatusBadRequest, "PDF appears too small / empty", "bad_request")
		return
	}
	docHash := hex.EncodeToString(hasher.Sum(nil))[:16]

	ctx := common.WithRequestID(r.Context(), reqID)
	text, err := s.Extractor.ExtractText(ctx, tmp.Name())
	if err != nil {
		log.Error("parse.extract_text.failed", zap.Error(err))
		s.fail(w, http.StatusInternalServerError, "failed to extract text: "+err.Error(), "extract_failed")
		return
	}

	rec, err := s.Assembler.Assemble(text)
	if err != nil {
		s.fail(w, http.StatusUnprocessableEntity, "no extractable text in PDF (try OCR install)", "no_text")
		return
	}
	if !extract.Usable(rec) {
		s.fail(w, http.StatusUnprocessableEntity, "could not detect minimum fields; tune patterns", "no_fields")
		return
	}
	rec.Barcode = r.FormValue("barcode")

	outcome, err := s.Store.Append(rec)
	if err != nil {
		log.Error("parse.append.failed", zap.Error(err))
		s.fail(w, http.StatusInternalServerError, "register append failed: "+err.Error(), "storage_failed")
		return
	}
	if outcome == register.OutcomeDuplicate {
		duplicatesSkippedTotal.Inc()
	}

	parseRequestsTotal.WithLabelValues("ok").Inc()
	parseDuration.Observe(time.Since(start).Seconds())
	log.Info("parse.ok",
		zap.String("hash", docHash),
		zap.String("product", rec.ProductName),
		zap.String("outcome", string(outcome)),
		zap.Int64("bytes", size),
	)

	abs, _ := filepath.Abs(s.Store.Path)
	writeJSON(w, http.StatusOK, ParseResponse{
		Hash:    docHash,
		Record:  rec.RowMap(),
		CSVPath: abs,
		Outcome: string(outcome),
	})
}

func (s *Service) handleOCRHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Extractor.Status(r.Context()))
}

func (s *Service) fail(w http.ResponseWriter, code int, detail, outcome string) {
	parseRequestsTotal.WithLabelValues(outcome).Inc()
	writeJSON(w, code, errorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
