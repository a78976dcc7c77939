package main

import (
	"context"
	"log"
	"os"
	"time"

	httpadapter "petverse/internal/adapter/http"
	metricsinmem "petverse/internal/adapter/metrics/inmemory"
	notifymem "petverse/internal/adapter/notify/memory"
	gormrepo "petverse/internal/adapter/repo/gorm"
	memrepo "petverse/internal/adapter/repo/memory"
	"petverse/internal/app/adopt"
	"petverse/internal/app/care"
	"petverse/internal/app/catchup"
	"petverse/internal/app/hatch"
	"petverse/internal/app/minigame"
	"petverse/internal/app/ports"
	"petverse/internal/app/replay"
	"petverse/internal/app/shop"
	"petverse/internal/app/sleep"
	"petverse/internal/app/status"
	"petverse/internal/app/tick"
	"petverse/internal/config"
	"petverse/internal/domain/pet"
	"petverse/internal/scheduler"

	"github.com/cloudwego/hertz/pkg/app/server"
	"gorm.io/gorm"
)

const sleepSweepInterval = time.Second

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	stateRepo, inventoryRepo, eventRepo, txManager := mustBuildRepos(cfg.Database)
	notifier := notifymem.NewSink(0)
	kpiRecorder := metricsinmem.NewRecorder()
	life := pet.NewLifecycleService(cfg.PetTuning())

	catchupUC := catchup.UseCase{
		TxManager: txManager,
		StateRepo: stateRepo,
		EventRepo: eventRepo,
		Notifier:  notifier,
		Life:      life,
	}
	decayUC := tick.DecayUseCase{
		TxManager: txManager,
		StateRepo: stateRepo,
		EventRepo: eventRepo,
		Notifier:  notifier,
		Metrics:   kpiRecorder,
		Life:      life,
	}
	sleepSweepUC := tick.SleepProgressUseCase{
		TxManager: txManager,
		StateRepo: stateRepo,
		EventRepo: eventRepo,
		Notifier:  notifier,
		Life:      life,
	}

	h := httpadapter.Handler{
		AdoptUC: adopt.UseCase{
			TxManager:     txManager,
			StateRepo:     stateRepo,
			InventoryRepo: inventoryRepo,
			EventRepo:     eventRepo,
			Notifier:      notifier,
		},
		StatusUC: status.UseCase{
			StateRepo:     stateRepo,
			InventoryRepo: inventoryRepo,
			Life:          life,
		},
		CareUC: care.UseCase{
			TxManager:     txManager,
			StateRepo:     stateRepo,
			InventoryRepo: inventoryRepo,
			EventRepo:     eventRepo,
			Notifier:      notifier,
			Metrics:       kpiRecorder,
			Life:          life,
		},
		SleepUC: sleep.StartUseCase{
			TxManager: txManager,
			StateRepo: stateRepo,
			EventRepo: eventRepo,
			Notifier:  notifier,
			Life:      life,
		},
		WakeUC: sleep.WakeUseCase{
			TxManager: txManager,
			StateRepo: stateRepo,
			EventRepo: eventRepo,
			Life:      life,
		},
		HatchUC: hatch.UseCase{
			TxManager: txManager,
			StateRepo: stateRepo,
			EventRepo: eventRepo,
			Notifier:  notifier,
			Life:      life,
		},
		ShopUC: shop.UseCase{
			TxManager:     txManager,
			StateRepo:     stateRepo,
			InventoryRepo: inventoryRepo,
			EventRepo:     eventRepo,
			Notifier:      notifier,
			Life:          life,
		},
		MinigameUC: minigame.UseCase{
			TxManager: txManager,
			StateRepo: stateRepo,
			EventRepo: eventRepo,
			Notifier:  notifier,
			Life:      life,
		},
		CatchupUC: catchupUC,
		ReplayUC:  replay.UseCase{StateRepo: stateRepo, EventRepo: eventRepo},
		Log:       notifier,
		KPI:       kpiRecorder,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Settle the downtime gap for every persisted pet before serving.
	if err := catchupUC.ExecuteAll(ctx); err != nil {
		log.Fatalf("boot catch-up: %v", err)
	}

	sched := scheduler.New()
	sched.Register(scheduler.Task{
		Name:     "decay",
		Interval: life.Tuning.TickPeriod,
		Run:      decayUC.ExecuteAll,
	})
	sched.Register(scheduler.Task{
		Name:     "sleep",
		Interval: sleepSweepInterval,
		Run:      sleepSweepUC.ExecuteAll,
	})
	go sched.Start(ctx)

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)

	log.Printf("petverse server listening on %s (db driver: %s)", cfg.Server.Addr, cfg.Database.Driver)
	s.Spin()
}

func configPath() string {
	if path := os.Getenv("PETVERSE_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}

func mustBuildRepos(cfg config.DatabaseConfig) (ports.PetStateRepository, ports.InventoryRepository, ports.EventRepository, ports.TxManager) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "postgres":
		db, err = gormrepo.OpenPostgres(cfg.DSN)
	case "sqlite":
		db, err = gormrepo.OpenSQLite(cfg.DSN)
	case "", "memory":
		store := memrepo.NewStore()
		return memrepo.NewPetStateRepo(store), memrepo.NewInventoryRepo(store), memrepo.NewEventRepo(store), memrepo.NewTxManager(store)
	default:
		log.Fatalf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := gormrepo.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return gormrepo.NewPetStateRepo(db), gormrepo.NewInventoryRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}
