package stub

import (
	"encoding/json"
	"net/http"
	"strconv"

	"offboardadmin/internal/models/entities"
	"offboardadmin/internal/validation"

	"github.com/gin-gonic/gin"
)

// perguntaWire espelha o formato de resposta do backend real, inclusive o
// caso legado em que opcoes chega serializado como string JSON.
type perguntaWire struct {
	CodQuestao   int             `json:"cod_questao"`
	TextoQuestao string          `json:"texto_questao"`
	TipoQuestao  string          `json:"tipo_questao"`
	Status       string          `json:"status"`
	Opcoes       json.RawMessage `json:"opcoes,omitempty"`
	Categoria    string          `json:"categoria,omitempty"`
}

func toPerguntaWire(p entities.Pergunta, legacy bool) perguntaWire {
	w := perguntaWire{
		CodQuestao:   p.CodQuestao,
		TextoQuestao: p.TextoQuestao,
		TipoQuestao:  p.TipoQuestao,
		Status:       p.Status,
		Categoria:    p.Categoria,
	}
	if len(p.Opcoes) == 0 {
		return w
	}
	arr, _ := json.Marshal([]string(p.Opcoes))
	if legacy {
		str, _ := json.Marshal(string(arr))
		w.Opcoes = str
	} else {
		w.Opcoes = arr
	}
	return w
}

func listPerguntas(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		all := sortedPerguntas(s.perguntas)

		if cat := c.Query("categoria"); cat != "" {
			filtered := all[:0:0]
			for _, p := range all {
				if p.Categoria == cat {
					filtered = append(filtered, p)
				}
			}
			all = filtered
		}
		if ativa := c.Query("ativa"); ativa != "" {
			want := entities.PerguntaInativa
			if ativa == "true" {
				want = entities.PerguntaAtiva
			}
			filtered := all[:0:0]
			for _, p := range all {
				if p.Status == want {
					filtered = append(filtered, p)
				}
			}
			all = filtered
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
		items, pag := paginate(all, page, perPage)

		wire := make([]perguntaWire, 0, len(items))
		for _, p := range items {
			wire = append(wire, toPerguntaWire(p, s.legacyOpcoes[p.CodQuestao]))
		}
		c.JSON(http.StatusOK, gin.H{"perguntas": wire, "pagination": pag})
	}
}

func getPergunta(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		id, _ := strconv.Atoi(c.Param("id"))
		p, ok := s.perguntas[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "pergunta não encontrada"})
			return
		}
		c.JSON(http.StatusOK, toPerguntaWire(p, s.legacyOpcoes[id]))
	}
}

func createPergunta(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entities.Pergunta
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
			return
		}
		if p.TextoQuestao == "" || p.TipoQuestao == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dados obrigatórios ausentes ou inválidos"})
			return
		}
		if p.TipoQuestao == entities.TipoMultiplaEscolha {
			if err := validation.ValidateOpcoes(p.Opcoes); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		if p.Status == "" {
			p.Status = entities.PerguntaAtiva
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		p.CodQuestao = s.nextPergunta
		s.nextPergunta++
		s.perguntas[p.CodQuestao] = p
		s.registra("pergunta_criada", "Pergunta criada: "+p.TextoQuestao)
		c.JSON(http.StatusCreated, toPerguntaWire(p, false))
	}
}

func updatePergunta(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p entities.Pergunta
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
			return
		}
		if p.TipoQuestao == entities.TipoMultiplaEscolha {
			if err := validation.ValidateOpcoes(p.Opcoes); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		id, _ := strconv.Atoi(c.Param("id"))
		if _, ok := s.perguntas[id]; !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "pergunta não encontrada"})
			return
		}
		p.CodQuestao = id
		s.perguntas[id] = p
		// uma atualização normaliza o registro para o formato atual
		delete(s.legacyOpcoes, id)
		c.JSON(http.StatusOK, toPerguntaWire(p, false))
	}
}

func deletePergunta(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		id, _ := strconv.Atoi(c.Param("id"))
		if _, ok := s.perguntas[id]; !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "pergunta não encontrada"})
			return
		}
		for _, q := range s.questionarios {
			for _, qid := range q.QuestoesIDs {
				if qid == id {
					c.JSON(http.StatusBadRequest, gin.H{"error": "pergunta está em uso por um questionário"})
					return
				}
			}
		}
		delete(s.perguntas, id)
		delete(s.legacyOpcoes, id)
		c.JSON(http.StatusOK, gin.H{"message": "pergunta removida"})
	}
}

func listCategorias(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, s.categorias)
	}
}
