package limitserver

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bytearena/stagelimits/common/boundary"
	apphandler "github.com/bytearena/stagelimits/limitserver/handler"
	"github.com/bytearena/stagelimits/limitserver/types"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const idPattern = "{id:[a-zA-Z0-9\\-]+}"

type LimitService struct {
	addr       string
	caster     *boundary.Caster
	boundaries *types.BoundaryMap
	logger     io.Writer
}

func NewLimitService(addr string, caster *boundary.Caster) *LimitService {
	if caster == nil {
		caster = boundary.DefaultCaster
	}

	return &LimitService{
		addr:       addr,
		caster:     caster,
		boundaries: types.NewBoundaryMap(),
		logger:     os.Stdout,
	}
}

func (service *LimitService) SetLogger(logger io.Writer) {
	service.logger = logger
}

func (service *LimitService) Boundaries() *types.BoundaryMap {
	return service.boundaries
}

func (service *LimitService) Router() *mux.Router {
	logged := func(handler func(w http.ResponseWriter, r *http.Request)) http.Handler {
		return handlers.CombinedLoggingHandler(service.logger, http.HandlerFunc(handler))
	}

	router := mux.NewRouter()

	router.Handle("/intersect/ray", logged(apphandler.IntersectRay(service.caster))).Methods("POST")
	router.Handle("/intersect/segment", logged(apphandler.IntersectSegment(service.caster))).Methods("POST")

	router.Handle("/boundary", logged(apphandler.ListBoundaries(service.boundaries))).Methods("GET")
	router.Handle("/boundary", logged(apphandler.CreateBoundary(service.boundaries, service.caster))).Methods("POST")
	router.Handle("/boundary/"+idPattern, logged(apphandler.GetBoundary(service.boundaries))).Methods("GET")
	router.Handle("/boundary/"+idPattern, logged(apphandler.DeleteBoundary(service.boundaries))).Methods("DELETE")
	router.Handle("/boundary/"+idPattern+"/ray", logged(apphandler.BoundaryRay(service.boundaries))).Methods("POST")

	return router
}

func (service *LimitService) ListenAndServe() error {
	log.Println("Stage limits service listening on " + service.addr)

	return http.ListenAndServe(service.addr, service.Router())
}
