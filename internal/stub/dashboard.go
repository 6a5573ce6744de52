package stub

import (
	"net/http"
	"sort"
	"strconv"

	"offboardadmin/internal/models/dto"
	"offboardadmin/internal/models/entities"

	"github.com/gin-gonic/gin"
)

func getEstatisticas(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		var stats dto.Estatisticas
		stats.TotalFuncionarios = len(s.funcionarios)
		for _, f := range s.funcionarios {
			if f.Status == entities.StatusProcessoSaida {
				stats.EmProcessoSaida++
			}
		}
		for _, a := range s.avaliacoes {
			switch a.Status {
			case entities.AvaliacaoPendente:
				stats.AvaliacoesPendentes++
			case entities.AvaliacaoConcluida:
				stats.AvaliacoesConcluidas++
			}
		}
		c.JSON(http.StatusOK, stats)
	}
}

func getAvaliacoesMes(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		meses, _ := strconv.Atoi(c.DefaultQuery("meses", "6"))
		if meses <= 0 {
			meses = 6
		}

		porMes := map[string]int{}
		for _, a := range s.avaliacoes {
			if a.CriadaEm == nil {
				continue
			}
			porMes[a.CriadaEm.Format("2006-01")]++
		}

		chaves := make([]string, 0, len(porMes))
		for mes := range porMes {
			chaves = append(chaves, mes)
		}
		sort.Strings(chaves)
		if len(chaves) > meses {
			chaves = chaves[len(chaves)-meses:]
		}

		out := make([]dto.AvaliacoesMes, 0, len(chaves))
		for _, mes := range chaves {
			out = append(out, dto.AvaliacoesMes{Mes: mes, Total: porMes[mes]})
		}
		c.JSON(http.StatusOK, out)
	}
}

func getMotivosSaida(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		porMotivo := map[string]int{}
		for _, a := range s.avaliacoes {
			if a.MotivoSaida != "" {
				porMotivo[a.MotivoSaida]++
			}
		}

		out := make([]dto.MotivoSaida, 0, len(porMotivo))
		for motivo, total := range porMotivo {
			out = append(out, dto.MotivoSaida{Motivo: motivo, Total: total})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Total != out[j].Total {
				return out[i].Total > out[j].Total
			}
			return out[i].Motivo < out[j].Motivo
		})
		c.JSON(http.StatusOK, out)
	}
}

func getStatusAvaliacoes(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		porStatus := map[string]int{}
		for _, a := range s.avaliacoes {
			porStatus[a.Status]++
		}

		// ordem fixa para o gráfico do painel
		ordem := []string{
			entities.AvaliacaoPendente,
			entities.AvaliacaoEmAndamento,
			entities.AvaliacaoConcluida,
			entities.AvaliacaoCancelada,
		}
		out := make([]dto.StatusAvaliacao, 0, len(ordem))
		for _, status := range ordem {
			if total, ok := porStatus[status]; ok {
				out = append(out, dto.StatusAvaliacao{Status: status, Total: total})
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

func getAtividadesRecentes(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		limite, _ := strconv.Atoi(c.DefaultQuery("limite", "10"))
		if limite <= 0 {
			limite = 10
		}

		out := make([]dto.Atividade, len(s.atividades))
		copy(out, s.atividades)
		sort.Slice(out, func(i, j int) bool { return out[i].Data.After(out[j].Data) })
		if len(out) > limite {
			out = out[:limite]
		}
		c.JSON(http.StatusOK, out)
	}
}
