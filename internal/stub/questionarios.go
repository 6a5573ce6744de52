package stub

import (
	"net/http"
	"strconv"

	"offboardadmin/internal/models/entities"

	"github.com/gin-gonic/gin"
)

// listQuestionarios responde um array puro, sem envelope nem paginação,
// como o backend real faz para este recurso.
func listQuestionarios(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, sortedQuestionarios(s.questionarios))
	}
}

func getQuestionario(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		id, _ := strconv.Atoi(c.Param("id"))
		q, ok := s.questionarios[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "questionário não encontrado"})
			return
		}
		c.JSON(http.StatusOK, q)
	}
}

func createQuestionario(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q entities.Questionario
		if err := c.ShouldBindJSON(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
			return
		}
		if q.DisplayName() == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nome do questionário é obrigatório"})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		for _, id := range q.QuestoesIDs {
			if _, ok := s.perguntas[id]; !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "pergunta " + strconv.Itoa(id) + " não existe"})
				return
			}
		}

		q.ID = s.nextQuestionario
		s.nextQuestionario++
		q.TotalPerguntas = len(q.QuestoesIDs)
		if q.Status == "" {
			q.Status = entities.QuestionarioRascunho
		}
		s.questionarios[q.ID] = q
		s.registra("questionario_criado", "Questionário "+q.DisplayName()+" criado")
		c.JSON(http.StatusCreated, q)
	}
}

func updateQuestionario(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q entities.Questionario
		if err := c.ShouldBindJSON(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		id, _ := strconv.Atoi(c.Param("id"))
		atual, ok := s.questionarios[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "questionário não encontrado"})
			return
		}
		q.ID = id
		if q.QuestoesIDs != nil {
			q.TotalPerguntas = len(q.QuestoesIDs)
		} else {
			q.QuestoesIDs = atual.QuestoesIDs
			q.TotalPerguntas = atual.TotalPerguntas
		}
		q.TotalAplicacoes = atual.TotalAplicacoes
		s.questionarios[id] = q
		c.JSON(http.StatusOK, q)
	}
}

// deleteQuestionario remove em cascata as avaliações que o utilizam e
// informa quantos registros foram apagados.
func deleteQuestionario(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		id, _ := strconv.Atoi(c.Param("id"))
		q, ok := s.questionarios[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "questionário não encontrado"})
			return
		}

		removidas := 0
		for aid, a := range s.avaliacoes {
			if a.QuestionarioID == id {
				delete(s.avaliacoes, aid)
				removidas++
			}
		}
		delete(s.questionarios, id)
		s.registra("questionario_removido", "Questionário "+q.DisplayName()+" removido")

		c.JSON(http.StatusOK, gin.H{
			"avaliacoes_removidas": removidas,
			"respostas_removidas":  removidas * q.TotalPerguntas,
			"message":              "questionário removido",
		})
	}
}

func listClassificacoes(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, s.classificacoes)
	}
}
