package service_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	service "github.com/okian/judgeboard/internal/app"
	"github.com/okian/judgeboard/internal/adapters/repository"
	"github.com/okian/judgeboard/internal/domain/model"
	"github.com/okian/judgeboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func team(name string, vals ...float64) model.Record {
	keys := []string{"impact_scalability", "innovation_creativity"}
	scores := make(model.Scores, len(vals))
	for i, v := range vals {
		scores[i] = model.Score{Key: keys[i], Value: v}
	}
	return model.Record{TeamName: name, Evaluation: model.Evaluation{CriteriaScores: scores}}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should report itself stopped", func() {
			So(svc, ShouldNotBeNil)
			So(svc.GetStats()["started"], ShouldEqual, false)
			So(svc.Formatter(), ShouldNotBeNil)
			So(svc.Labels(), ShouldNotBeNil)
		})

		Convey("Then reads fail before Start", func() {
			ctx := context.Background()
			_, err := svc.NewView(ctx)
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			_, err = svc.Leaderboard(ctx, 0)
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			_, err = svc.Stats(ctx)
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
		})
	})
}

func TestService_StartLogsDatasetOrigin(t *testing.T) {
	Convey("Given a service logging JSON to a buffer", t, func() {
		var buf bytes.Buffer
		So(logger.Init(logger.WithWriter(&buf), logger.WithFormat(logger.FormatJSON)), ShouldBeNil)
		defer func() { _ = logger.Init() }()

		svc := service.New(service.WithLogger(logger.Get()))
		defer svc.Stop()

		Convey("When the dataset is loaded", func() {
			So(svc.Start(context.Background()), ShouldBeNil)

			var loaded string
			for _, line := range strings.Split(buf.String(), "\n") {
				if strings.Contains(line, `"msg":"dataset loaded"`) {
					loaded = line
				}
			}

			Convey("Then the origin and the caller use separate keys", func() {
				So(loaded, ShouldContainSubstring, `"dataset":"embedded:`+repository.SamplePath+`"`)
				So(strings.Count(loaded, `"source":`), ShouldEqual, 1)
				So(loaded, ShouldContainSubstring, "service.go")
			})
		})
	})
}

func TestService_Start(t *testing.T) {
	Convey("Given a service on the embedded sample", t, func() {
		svc := service.New()
		defer svc.Stop()

		Convey("When starting the service", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := svc.Start(ctx)

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["teams"], ShouldEqual, 4)
				So(stats["source"], ShouldEqual, "embedded:"+repository.SamplePath)
			})

			Convey("And starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})
		})
	})

	Convey("Given a service pointed at a missing file", t, func() {
		svc := service.New(service.WithDatasetPath(filepath.Join(t.TempDir(), "none.json")))

		Convey("When starting the service", func() {
			err := svc.Start(context.Background())

			Convey("Then the load error is returned", func() {
				So(errors.Is(err, repository.ErrLoadDataset), ShouldBeTrue)
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Stop(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New()
		So(svc.Start(context.Background()), ShouldBeNil)

		Convey("When stopping the service twice", func() {
			svc.Stop()
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Reads(t *testing.T) {
	Convey("Given a service with an injected store", t, func() {
		store, err := repository.NewMemoryStore([]model.Record{
			team("Alpha", 6, 6),
			team("Bravo", 9, 9),
			team("Charlie", 8, 7),
		})
		So(err, ShouldBeNil)

		svc := service.New(service.WithStore(store))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When building a view", func() {
			v, err := svc.NewView(ctx)

			Convey("Then it starts on the first team", func() {
				So(err, ShouldBeNil)
				So(v.SelectedIndex(), ShouldEqual, 0)
				So(v.Header().TeamName, ShouldEqual, "Alpha")
			})
		})

		Convey("When asking for the leaderboard", func() {
			all, err := svc.Leaderboard(ctx, 0)
			So(err, ShouldBeNil)
			top, err := svc.Leaderboard(ctx, 2)
			So(err, ShouldBeNil)
			big, err := svc.Leaderboard(ctx, 50)
			So(err, ShouldBeNil)

			Convey("Then it is ordered and limited", func() {
				So(len(all), ShouldEqual, 3)
				So(all[0].TeamName, ShouldEqual, "Bravo")
				So(len(top), ShouldEqual, 2)
				So(top[1].TeamName, ShouldEqual, "Charlie")
				So(len(big), ShouldEqual, 3)
			})
		})

		Convey("When finding a team by name", func() {
			i, err := svc.FindTeam(ctx, "bravo")

			Convey("Then its index is returned", func() {
				So(err, ShouldBeNil)
				So(i, ShouldEqual, 1)
			})
		})

		Convey("When summarizing", func() {
			s, err := svc.Stats(ctx)

			Convey("Then the dataset totals are reported", func() {
				So(err, ShouldBeNil)
				So(s.TotalTeams, ShouldEqual, 3)
				So(s.MaxScore, ShouldEqual, 9.0)
			})
		})
	})

	Convey("Given criteria weights", t, func() {
		store, err := repository.NewMemoryStore([]model.Record{
			team("Alpha", 10, 2),
			team("Bravo", 5, 9),
		})
		So(err, ShouldBeNil)
		svc := service.New(
			service.WithStore(store),
			service.WithCriteriaWeights(map[string]float64{"impact_scalability": 1}),
		)
		So(svc.Start(context.Background()), ShouldBeNil)

		Convey("Then the leaderboard follows the weights", func() {
			got, err := svc.Leaderboard(context.Background(), 0)
			So(err, ShouldBeNil)
			So(got[0].TeamName, ShouldEqual, "Alpha")
			So(got[0].Weighted, ShouldEqual, 10.0)
		})
	})
}

func TestServiceConcurrency(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New()
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When many goroutines build views and leaderboards", func() {
			var wg sync.WaitGroup
			errs := make(chan error, 100)
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					v, err := svc.NewView(ctx)
					if err != nil {
						errs <- err
						return
					}
					if err := v.SelectTeam(i % v.Len()); err != nil {
						errs <- err
						return
					}
					v.SetSearchText("a")
					_ = v.Snapshot()
					if _, err := svc.Leaderboard(ctx, 2); err != nil {
						errs <- err
					}
				}(i)
			}
			wg.Wait()
			close(errs)

			Convey("Then every call succeeds", func() {
				So(len(errs), ShouldEqual, 0)
			})
		})
	})
}
