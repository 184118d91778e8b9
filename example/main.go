// Command serenumexample serves jobs whose status and priority are string
// enums generated by Serenum. Run "go generate ./..." to regenerate them.
package main

import (
	"errors"
	"flag"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"example.com/serenumexample/job"
	"github.com/Embers-of-the-Fire/serenum/pkg/serenumerrors"
)

var configFlag = flag.String("config", "", "path to YAML config")

type server struct {
	cfg Config

	mu   sync.Mutex
	jobs []job.Job
}

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		panic(err)
	}

	e := newEcho(&server{cfg: cfg})
	e.Logger.Fatal(e.Start(cfg.Addr))
}

func newEcho(s *server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	spec := newSpec()
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, spec)
	})
	e.GET("/jobs", s.listJobs)
	e.POST("/jobs", s.createJob)
	e.PUT("/jobs/:id/status/:status", s.updateStatus)
	return e
}

// listJobs lists jobs, optionally filtered by ?status=<text>.
func (s *server) listJobs(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filter := c.QueryParam("status")
	if filter == "" {
		return c.JSON(http.StatusOK, s.jobs)
	}

	status, err := job.ParseStatus(filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	jobs := []job.Job{}
	for _, j := range s.jobs {
		if j.Status == status {
			jobs = append(jobs, j)
		}
	}
	return c.JSON(http.StatusOK, jobs)
}

// createJob creates a job from a JSON body. Omitted enums get the configured
// defaults.
func (s *server) createJob(c echo.Context) error {
	j := job.Job{
		Status:   s.cfg.DefaultStatus,
		Priority: s.cfg.DefaultPriority,
	}
	if err := c.Bind(&j); err != nil {
		if errors.Is(err, serenumerrors.ErrNoMatch) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	j.ID = len(s.jobs) + 1
	s.jobs = append(s.jobs, j)
	return c.JSON(http.StatusCreated, j)
}

func (s *server) updateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job id")
	}
	status, err := job.ParseStatus(c.Param("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 1 || id > len(s.jobs) {
		return echo.NewHTTPError(http.StatusNotFound, "job not found")
	}
	s.jobs[id-1].Status = status
	return c.JSON(http.StatusOK, s.jobs[id-1])
}
