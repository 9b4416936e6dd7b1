package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registra métricas de negocio de pasaportes.
// Implementa passports.Recorder.
type Collector struct {
	issued      prometheus.Counter
	transferred prometheus.Counter
	nameUpdated prometheus.Counter
	denied      *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		issued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "passports_issued_total",
			Help: "Total de pasaportes emitidos y asignados",
		}),
		transferred: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "passports_transferred_total",
			Help: "Total de transferencias de pasaportes",
		}),
		nameUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "passports_animal_name_updates_total",
			Help: "Total de cambios de nombre del animal",
		}),
		denied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "passports_permission_denied_total",
			Help: "Operaciones rechazadas por permisos, por operación",
		}, []string{"op"}),
	}

	reg.MustRegister(c.issued, c.transferred, c.nameUpdated, c.denied)
	return c
}

func (c *Collector) PassportIssued()      { c.issued.Inc() }
func (c *Collector) PassportTransferred() { c.transferred.Inc() }
func (c *Collector) AnimalNameUpdated()   { c.nameUpdated.Inc() }

func (c *Collector) PermissionDenied(op string) {
	c.denied.WithLabelValues(op).Inc()
}

// Handler expone las métricas para Prometheus.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
