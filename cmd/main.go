package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/communication"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/environment"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/locking"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/logger"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/schedule"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/workers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	var logging logger.Interface = logger.Logger{}
	fmt.Println("Server is starting up...")

	environment.Initialize()

	client, err := mongo.NewClient(options.Client().ApplyURI(environment.Global.DatabaseUrl))
	if err != nil {
		log.Fatal(err)
	}

	var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		log.Panic(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Panic(err)
	}

	defer func() {
		err := client.Disconnect(ctx)
		if err != nil {
			logging.Fatal(err)
		}
	}()

	fmt.Println("Database connected")

	db := client.Database(environment.Global.Database)

	workerCollection := db.Collection("Workers")
	blockCollection := db.Collection("ScheduleBlocks")

	var locker locking.LockerInterface
	var directoryCache workers.DirectoryCacheInterface

	if environment.Global.Redis != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     environment.Global.Redis,
			Password: environment.Global.RedisPassword,
		})

		locker = locking.NewLockerRedis(redisClient)

		directoryCache, err = workers.NewDirectoryCacheRedis(redisClient)
		if err != nil {
			logging.Fatal(err)
		}

		fmt.Println("Redis connected")
	} else {
		locker = locking.NewLockerMemory()

		directoryCache, err = workers.NewDirectoryCacheMemory()
		if err != nil {
			logging.Fatal(err)
		}
	}

	cellSize := 0
	if environment.Global.GridCellSize != "" {
		cellSize, err = strconv.Atoi(environment.Global.GridCellSize)
		if err != nil {
			logging.Fatal(err)
		}
	}

	persistTimeout := time.Duration(0)
	if environment.Global.PersistTimeout != "" {
		persistTimeout, err = time.ParseDuration(environment.Global.PersistTimeout)
		if err != nil {
			logging.Fatal(err)
		}
	}

	geometry := schedule.NewGeometry(cellSize)

	responseManager := communication.ResponseManager{Logger: logging}

	blockRepository := &schedule.MongoDBBlockRepository{DB: blockCollection, Logger: logging}
	workerRepository := &workers.MongoDBWorkerRepository{DB: workerCollection, Logger: logging}

	serviceManager := &schedule.ServiceManager{
		Repository:     blockRepository,
		Logger:         logging,
		Locker:         locker,
		Geometry:       geometry,
		Rules:          schedule.DefaultRules,
		PersistTimeout: persistTimeout,
	}

	scheduleHandler := schedule.Handler{
		Services:        serviceManager,
		Renderer:        schedule.Renderer{Geometry: geometry},
		Logger:          logging,
		ResponseManager: &responseManager,
	}

	workerHandler := workers.Handler{
		WorkerRepository: workerRepository,
		DirectoryCache:   directoryCache,
		Logger:           logging,
		ResponseManager:  &responseManager,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)

		_, err := fmt.Fprint(writer, "Welcome to the shiftgrid API! ✔")
		if err != nil {
			log.Printf("Error: %v\n", err)
		}
	})

	r.HandleFunc("/schedule", scheduleHandler.ScheduleGet).Methods(http.MethodGet)
	r.HandleFunc("/schedule", scheduleHandler.ScheduleDeleteAll).Methods(http.MethodDelete)
	r.HandleFunc("/schedule/block", scheduleHandler.BlockAdd).Methods(http.MethodPost)
	r.HandleFunc("/schedule/block/{blockID}/move", scheduleHandler.BlockMove).Methods(http.MethodPatch)
	r.HandleFunc("/schedule/block/{blockID}", scheduleHandler.BlockUpdate).Methods(http.MethodPut)
	r.HandleFunc("/schedule/block/{blockID}", scheduleHandler.BlockDelete).Methods(http.MethodDelete)
	r.HandleFunc("/schedule/export", scheduleHandler.ScheduleExport).Methods(http.MethodGet)
	r.HandleFunc("/schedule/import", scheduleHandler.ScheduleImport).Methods(http.MethodPost)
	r.HandleFunc("/schedule/retry", scheduleHandler.ScheduleRetry).Methods(http.MethodPost)

	r.HandleFunc("/worker", workerHandler.WorkerAdd).Methods(http.MethodPost)
	r.HandleFunc("/worker/{workerID}", workerHandler.WorkerDelete).Methods(http.MethodDelete)
	r.HandleFunc("/workers", workerHandler.GetAllWorkers).Methods(http.MethodGet)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if environment.Global.Cors != "" {
				w.Header().Set("Access-Control-Allow-Origin", environment.Global.Cors)
			}
			w.Header().Add("Content-Type", "application/json")
			next.ServeHTTP(w, r)
		})
	})

	port := environment.Global.Port
	if port == "" {
		port = "80"
	}

	http.Handle("/", r)
	log.Panic(http.ListenAndServe(":"+port, r))
}
