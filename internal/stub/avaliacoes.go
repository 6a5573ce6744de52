package stub

import (
	"net/http"
	"strconv"
	"time"

	"offboardadmin/internal/models/entities"
	"offboardadmin/internal/validation"

	"github.com/gin-gonic/gin"
)

func listAvaliacoes(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		all := sortedAvaliacoes(s.avaliacoes)

		if status := c.Query("status"); status != "" {
			filtered := all[:0:0]
			for _, a := range all {
				if a.Status == status {
					filtered = append(filtered, a)
				}
			}
			all = filtered
		}
		if cpf := validation.NormalizeCPF(c.Query("funcionario")); cpf != "" {
			filtered := all[:0:0]
			for _, a := range all {
				if a.FuncionarioCPF == cpf {
					filtered = append(filtered, a)
				}
			}
			all = filtered
		}

		c.JSON(http.StatusOK, all)
	}
}

func getAvaliacao(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		id, _ := strconv.Atoi(c.Param("id"))
		a, ok := s.avaliacoes[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "avaliação não encontrada"})
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func createAvaliacao(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var a entities.Avaliacao
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
			return
		}
		a.FuncionarioCPF = validation.NormalizeCPF(a.FuncionarioCPF)

		s.mu.Lock()
		defer s.mu.Unlock()

		f, ok := s.funcionarios[a.FuncionarioCPF]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "funcionário não encontrado"})
			return
		}
		q, ok := s.questionarios[a.QuestionarioID]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "questionário não encontrado"})
			return
		}

		a.ID = s.nextAvaliacao
		s.nextAvaliacao++
		a.FuncionarioNome = f.Nome
		if a.Status == "" {
			a.Status = entities.AvaliacaoPendente
		}
		now := time.Now().UTC()
		a.CriadaEm = &now

		q.TotalAplicacoes++
		s.questionarios[q.ID] = q

		s.avaliacoes[a.ID] = a
		s.registra("avaliacao_criada", "Avaliação de "+f.Nome+" criada")
		c.JSON(http.StatusCreated, a)
	}
}

func updateAvaliacaoStatus(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status é obrigatório"})
			return
		}
		switch body.Status {
		case entities.AvaliacaoPendente, entities.AvaliacaoEmAndamento,
			entities.AvaliacaoConcluida, entities.AvaliacaoCancelada:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "status inválido"})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		id, _ := strconv.Atoi(c.Param("id"))
		a, ok := s.avaliacoes[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "avaliação não encontrada"})
			return
		}
		a.Status = body.Status
		if body.Status == entities.AvaliacaoConcluida {
			now := time.Now().UTC()
			a.ConcluidaEm = &now
			s.registra("avaliacao_concluida", "Avaliação de "+a.FuncionarioNome+" concluída")
		}
		s.avaliacoes[id] = a
		c.JSON(http.StatusOK, a)
	}
}
