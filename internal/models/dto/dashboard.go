package dto

import "time"

// ============================================
// DASHBOARD RESPONSE DTOs
// ============================================

// Estatisticas representa os contadores gerais do painel
type Estatisticas struct {
	TotalFuncionarios    int `json:"total_funcionarios" example:"120"`
	EmProcessoSaida      int `json:"em_processo_saida" example:"7"`
	AvaliacoesPendentes  int `json:"avaliacoes_pendentes" example:"12"`
	AvaliacoesConcluidas int `json:"avaliacoes_concluidas" example:"85"`
}

// AvaliacoesMes representa o total de avaliações de um mês
type AvaliacoesMes struct {
	Mes   string `json:"mes" example:"2026-07"`
	Total int    `json:"total" example:"14"`
}

// MotivoSaida representa a contagem de um motivo de desligamento
type MotivoSaida struct {
	Motivo string `json:"motivo" example:"Proposta melhor"`
	Total  int    `json:"total" example:"9"`
}

// StatusAvaliacao representa a contagem de avaliações por status
type StatusAvaliacao struct {
	Status string `json:"status" example:"Pendente"`
	Total  int    `json:"total" example:"12"`
}

// Atividade representa uma entrada do feed de atividades recentes
type Atividade struct {
	Tipo      string    `json:"tipo" example:"avaliacao_concluida"`
	Descricao string    `json:"descricao" example:"Avaliação de Ana Souza concluída"`
	Data      time.Time `json:"data" example:"2026-08-20T14:32:00Z"`
}

// Dashboard agrega as cinco consultas do painel inicial
type Dashboard struct {
	Estatisticas       Estatisticas      `json:"estatisticas"`
	AvaliacoesPorMes   []AvaliacoesMes   `json:"avaliacoes_por_mes"`
	MotivosSaida       []MotivoSaida     `json:"motivos_saida"`
	StatusAvaliacoes   []StatusAvaliacao `json:"status_avaliacoes"`
	AtividadesRecentes []Atividade       `json:"atividades_recentes"`
}
