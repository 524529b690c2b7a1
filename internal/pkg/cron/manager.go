package cron

import (
	"Warbler/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	mediaCleanJob  *job.MediaCleanupJob
	mediaCleanSpec string
}

// NewCronManager spec 使用标准 5 段表达式或 @daily 这类描述符
func NewCronManager(mediaCleanJob *job.MediaCleanupJob, mediaCleanSpec string) *Manager {
	return &Manager{
		engine:         cron.New(),
		mediaCleanJob:  mediaCleanJob,
		mediaCleanSpec: mediaCleanSpec,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.mediaCleanSpec, cron.NewChain(cron.SkipIfStillRunning(cron.DefaultLogger)).Then(s.mediaCleanJob)); err != nil {
		return err
	}
	return nil
}

// Start 注册全部任务后启动调度，任务表达式非法时不启动
func (s *Manager) Start() error {
	if err := s.RegisterJobs(); err != nil {
		return err
	}
	s.engine.Start()
	log.Info("Cron engine started", "jobs", len(s.engine.Entries()), "media_clean_spec", s.mediaCleanSpec)
	return nil
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	log.Info("Cron engine stopping")
	<-s.engine.Stop().Done()
}
