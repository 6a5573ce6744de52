package stub

import (
	"net/http"

	"offboardadmin/internal/models/entities"
	"offboardadmin/internal/validation"

	"github.com/gin-gonic/gin"
)

func listTreinamentos(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, s.treinamentos)
	}
}

func createFuncionarioTreinamento(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var v entities.FuncionarioTreinamento
		if err := c.ShouldBindJSON(&v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
			return
		}
		v.FuncionarioCPF = validation.NormalizeCPF(v.FuncionarioCPF)

		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.funcionarios[v.FuncionarioCPF]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "funcionário não encontrado"})
			return
		}
		found := false
		for _, t := range s.treinamentos {
			if t.ID == v.TreinamentoID {
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "treinamento não encontrado"})
			return
		}
		for _, existente := range s.vinculos {
			if existente == v {
				c.JSON(http.StatusBadRequest, gin.H{"error": "vínculo já existe"})
				return
			}
		}
		s.vinculos = append(s.vinculos, v)
		c.JSON(http.StatusCreated, v)
	}
}
