package stub

import (
	"net/http"

	"offboardadmin/internal/models/entities"

	"github.com/gin-gonic/gin"
)

func listAvaliadores(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, sortedAvaliadores(s.avaliadores))
	}
}

func getAvaliador(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		a, ok := s.avaliadores[c.Param("cpf")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "avaliador não encontrado"})
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func listCertificados(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		cpf := c.Param("cpf")
		if _, ok := s.avaliadores[cpf]; !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "avaliador não encontrado"})
			return
		}
		certs := s.certificados[cpf]
		if certs == nil {
			certs = []entities.Certificado{}
		}
		c.JSON(http.StatusOK, certs)
	}
}
