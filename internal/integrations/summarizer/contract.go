package summarizer

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счетчик переходов на запасной текст
type Metrics interface {
	SummarizerFallback(operation string)
}
