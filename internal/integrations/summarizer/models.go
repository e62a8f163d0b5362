package summarizer

// Тексты, которые показываются пользователю, если генерация недоступна
const (
	DefaultDescription  = "Descrição gerada automaticamente."
	FallbackDescription = "Erro ao gerar descrição."
	DefaultSummary      = "Sem resumo disponível."
	FallbackSummary     = "Não foi possível gerar o resumo da agenda."
)

// AgendaItem запись дня в том виде, в каком она передается в промпт
type AgendaItem struct {
	Time        string `json:"time"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	Status      string `json:"status"`
}
