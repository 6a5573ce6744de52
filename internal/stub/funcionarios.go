package stub

import (
	"net/http"
	"strconv"

	"offboardadmin/internal/models/entities"
	"offboardadmin/internal/validation"

	"github.com/gin-gonic/gin"
)

func listFuncionarios(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		all := sortedFuncionarios(s.funcionarios)

		if status := c.Query("status"); status != "" {
			filtered := all[:0:0]
			for _, f := range all {
				if f.Status == status {
					filtered = append(filtered, f)
				}
			}
			all = filtered
		}
		if dep := c.Query("departamento"); dep != "" {
			filtered := all[:0:0]
			for _, f := range all {
				if f.Setor == dep {
					filtered = append(filtered, f)
				}
			}
			all = filtered
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
		items, pag := paginate(all, page, perPage)

		c.JSON(http.StatusOK, gin.H{"funcionarios": items, "pagination": pag})
	}
}

func getFuncionario(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		f, ok := s.funcionarios[c.Param("cpf")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "funcionário não encontrado"})
			return
		}
		c.JSON(http.StatusOK, f)
	}
}

func createFuncionario(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f entities.Funcionario
		if err := c.ShouldBindJSON(&f); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
			return
		}
		if !validation.ValidCPF(f.CPF) || f.Nome == "" || f.Email == "" || f.Setor == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dados obrigatórios ausentes ou inválidos"})
			return
		}
		f.CPF = validation.NormalizeCPF(f.CPF)
		if f.Status == "" {
			f.Status = entities.StatusAtivo
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if _, exists := s.funcionarios[f.CPF]; exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "funcionário já cadastrado"})
			return
		}
		s.funcionarios[f.CPF] = f
		s.registra("funcionario_cadastrado", "Funcionário "+f.Nome+" cadastrado")
		c.JSON(http.StatusCreated, f)
	}
}

func updateFuncionario(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f entities.Funcionario
		if err := c.ShouldBindJSON(&f); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		cpf := c.Param("cpf")
		if _, ok := s.funcionarios[cpf]; !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "funcionário não encontrado"})
			return
		}
		// CPF é imutável: o valor do path prevalece sobre o corpo
		f.CPF = cpf
		s.funcionarios[cpf] = f
		c.JSON(http.StatusOK, f)
	}
}

func deleteFuncionario(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		cpf := c.Param("cpf")
		f, ok := s.funcionarios[cpf]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "funcionário não encontrado"})
			return
		}
		for _, a := range s.avaliacoes {
			if a.FuncionarioCPF == cpf {
				c.JSON(http.StatusBadRequest, gin.H{"error": "funcionário possui avaliações"})
				return
			}
		}
		delete(s.funcionarios, cpf)
		s.registra("funcionario_removido", "Funcionário "+f.Nome+" removido")
		c.JSON(http.StatusOK, gin.H{"message": "funcionário removido"})
	}
}

func listDepartamentos(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, s.departamentos)
	}
}
