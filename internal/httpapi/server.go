package httpapi

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"sitecheck/internal/checker"
	"sitecheck/internal/httpapi/middleware"
	"sitecheck/internal/session"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type Server struct {
	Logger  *zap.Logger
	Session *session.Session
}

func NewServer(l *zap.Logger, s *session.Session) *Server {
	return &Server{Logger: l, Session: s}
}

// Router builds the full handler chain. CORS is wide open so the check
// endpoint stays usable when the page is embedded from another origin.
func (s *Server) Router(ratePerMin, rateBurst int) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)
	r.Use(middleware.RateLimit(ratePerMin, rateBurst))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", s.handleIndex)
	r.Post("/api/check", s.handleCheck)

	return r
}

type checkPayload struct {
	URL string `json:"url"`
}

// handleCheck runs one check and always answers 200 with a result body.
// Empty and malformed URLs come back as normal failure results, not HTTP
// errors.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var p checkPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}

	res := s.Session.Check(r.Context(), p.URL)

	s.Logger.Info("check",
		zap.String("url", p.URL),
		zap.Int("status", res.Status),
		zap.Bool("success", res.Success),
		zap.Float64("response_time_ms", res.ResponseTimeMS),
		zap.String("message", res.Message),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

type indexView struct {
	Checking bool
	Input    string
	Result   *checker.Result
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := s.Session.Snapshot()
	v := indexView{
		Checking: st.Phase == session.Checking,
		Input:    st.Input,
		Result:   st.Result,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, v); err != nil {
		s.Logger.Warn("render_index", zap.Error(err))
	}
}
