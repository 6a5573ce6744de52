package stub

import "github.com/gin-gonic/gin"

// registerRoutes espelha o contrato REST do backend de produção.
func registerRoutes(engine *gin.Engine, s *Store) {
	dashboard := engine.Group("/dashboard")
	{
		dashboard.GET("/estatisticas", getEstatisticas(s))
		dashboard.GET("/avaliacoes-mes", getAvaliacoesMes(s))
		dashboard.GET("/motivos-saida", getMotivosSaida(s))
		dashboard.GET("/status-avaliacoes", getStatusAvaliacoes(s))
		dashboard.GET("/atividades-recentes", getAtividadesRecentes(s))
	}

	funcionarios := engine.Group("/funcionarios")
	{
		funcionarios.GET("", listFuncionarios(s))
		funcionarios.GET("/:cpf", getFuncionario(s))
		funcionarios.POST("", createFuncionario(s))
		funcionarios.PUT("/:cpf", updateFuncionario(s))
		funcionarios.DELETE("/:cpf", deleteFuncionario(s))
	}
	engine.GET("/departamentos", listDepartamentos(s))

	perguntas := engine.Group("/perguntas")
	{
		perguntas.GET("", listPerguntas(s))
		perguntas.GET("/:id", getPergunta(s))
		perguntas.POST("", createPergunta(s))
		perguntas.PUT("/:id", updatePergunta(s))
		perguntas.DELETE("/:id", deletePergunta(s))
	}
	engine.GET("/categorias", listCategorias(s))

	avaliacoes := engine.Group("/avaliacoes")
	{
		avaliacoes.GET("", listAvaliacoes(s))
		avaliacoes.GET("/:id", getAvaliacao(s))
		avaliacoes.POST("", createAvaliacao(s))
		avaliacoes.PUT("/:id/status", updateAvaliacaoStatus(s))
	}

	questionarios := engine.Group("/questionarios")
	{
		questionarios.GET("", listQuestionarios(s))
		questionarios.GET("/:id", getQuestionario(s))
		questionarios.POST("", createQuestionario(s))
		questionarios.PUT("/:id", updateQuestionario(s))
		questionarios.DELETE("/:id", deleteQuestionario(s))
	}
	engine.GET("/classificacoes", listClassificacoes(s))

	avaliadores := engine.Group("/avaliadores")
	{
		avaliadores.GET("", listAvaliadores(s))
		avaliadores.GET("/:cpf", getAvaliador(s))
		avaliadores.GET("/:cpf/certificados", listCertificados(s))
	}

	engine.GET("/treinamentos", listTreinamentos(s))
	engine.POST("/funcionario-treinamento", createFuncionarioTreinamento(s))
}
