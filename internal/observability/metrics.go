package observability

import "expvar"

var (
	SpellChecksTotal   = expvar.NewInt("spell_checks_total")
	SpellMissesTotal   = expvar.NewInt("spell_misses_total")
	SuggestsTotal      = expvar.NewInt("suggest_requests_total")
	WordsAddedTotal    = expvar.NewInt("words_added_total")
	WordsRemovedTotal  = expvar.NewInt("words_removed_total")
	PersistFailures    = expvar.NewInt("persist_failures_total")
	EngineLoadsTotal   = expvar.NewInt("engine_loads_total")
	EngineLoadFailures = expvar.NewInt("engine_load_failures_total")

	RequestsTotal = expvar.NewInt("requests_total")
	Responses2xx  = expvar.NewInt("responses_2xx")
	Responses4xx  = expvar.NewInt("responses_4xx")
	Responses5xx  = expvar.NewInt("responses_5xx")
)

func recordStatus(code int) {
	RequestsTotal.Add(1)
	switch {
	case code >= 200 && code < 300:
		Responses2xx.Add(1)
	case code >= 400 && code < 500:
		Responses4xx.Add(1)
	case code >= 500:
		Responses5xx.Add(1)
	}
}
