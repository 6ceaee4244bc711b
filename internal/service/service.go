package service

import (
	"github.com/transitpulse/backend/internal/domain"
)

// StatisticsProvider and CongestionRepository are re-exported from domain for convenience
type StatisticsProvider = domain.StatisticsProvider
type CongestionRepository = domain.CongestionRepository
