// Package metrics определяет счётчики Prometheus контроля допуска.
// Сами метрики отдаются через /metrics в маршрутах приложения.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsAdmitted — количество успешно подтверждённых регистраций.
	RegistrationsAdmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "unievents_registrations_admitted_total",
		Help: "Number of registrations admitted as confirmed.",
	})

	// RegistrationsRejectedFull — отказы из-за исчерпанной вместимости события.
	RegistrationsRejectedFull = promauto.NewCounter(prometheus.CounterOpts{
		Name: "unievents_registrations_rejected_full_total",
		Help: "Number of registration attempts rejected because the event was full.",
	})

	// RegistrationsRejectedDuplicate — отказы из-за повторной регистрации.
	RegistrationsRejectedDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Name: "unievents_registrations_rejected_duplicate_total",
		Help: "Number of registration attempts rejected as duplicates.",
	})
)
