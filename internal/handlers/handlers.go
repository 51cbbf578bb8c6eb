package handlers

import (
	"github.com/camshaft/carcatalog/pkg/catalog"
	"github.com/camshaft/carcatalog/pkg/database/repository"
	"github.com/camshaft/carcatalog/pkg/logging"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// API bundles the repositories, the aggregate tree cache and the routes that
// expose them.
type API struct {
	makes         *repository.MakeRepository
	models        *repository.ModelRepository
	generations   *repository.GenerationRepository
	chassisCodes  *repository.ChassisCodeRepository
	trims         *repository.TrimRepository
	engines       *repository.EngineRepository
	transmissions *repository.TransmissionRepository
	cars          *repository.CarRepository
	tree          *catalog.TreeCache
	logger        logging.Logger
}

func NewAPI(db *gorm.DB) *API {
	return &API{
		makes:         repository.NewMakeRepository(db),
		models:        repository.NewModelRepository(db),
		generations:   repository.NewGenerationRepository(db),
		chassisCodes:  repository.NewChassisCodeRepository(db),
		trims:         repository.NewTrimRepository(db),
		engines:       repository.NewEngineRepository(db),
		transmissions: repository.NewTransmissionRepository(db),
		cars:          repository.NewCarRepository(db),
		tree:          catalog.NewTreeCache(db),
		logger:        logging.GetGlobalLoggerFactory().CreateLogger("api"),
	}
}

// NewRouter builds the full route table on a fresh gorilla router.
func (a *API) NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.StrictSlash(true)
	router.Use(contentTypeApplicationJsonMiddleware)
	router.Use(requestLoggingMiddleware(a.logger))

	router.HandleFunc("/all", a.GetAllHandler).Methods("GET")

	router.HandleFunc("/makes", a.GetMakesHandler).Methods("GET")
	router.HandleFunc("/makes", a.AddMakeHandler).Methods("POST")

	router.HandleFunc("/models", a.GetModelsHandler).Methods("GET")
	router.HandleFunc("/models", a.AddModelHandler).Methods("POST")
	router.HandleFunc("/models/{make_name}/{model_name}", a.DeleteModelHandler).Methods("DELETE")

	router.HandleFunc("/generations", a.GetGenerationsHandler).Methods("GET")
	router.HandleFunc("/generations", a.AddGenerationHandler).Methods("POST")

	router.HandleFunc("/chassiscodes", a.GetChassisCodesHandler).Methods("GET")
	router.HandleFunc("/chassiscodes", a.AddChassisCodeHandler).Methods("POST")

	router.HandleFunc("/trims", a.GetTrimsHandler).Methods("GET")
	router.HandleFunc("/trims", a.AddTrimHandler).Methods("POST")

	router.HandleFunc("/engines", a.GetEnginesHandler).Methods("GET")
	router.HandleFunc("/engines", a.AddEngineHandler).Methods("POST")

	router.HandleFunc("/transmissions", a.GetTransmissionsHandler).Methods("GET")
	router.HandleFunc("/transmissions", a.AddTransmissionHandler).Methods("POST")
	router.HandleFunc("/transmissions/{transmission_name}", a.UpdateTransmissionHandler).Methods("PUT")
	router.HandleFunc("/transmissions/{transmission_name}", a.DeleteTransmissionHandler).Methods("DELETE")

	router.HandleFunc("/cars", a.GetCarsHandler).Methods("GET")
	router.HandleFunc("/cars", a.AddCarHandler).Methods("POST")

	return router
}
