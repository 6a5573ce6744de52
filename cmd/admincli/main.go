package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"offboardadmin/internal/apiclient"
	"offboardadmin/internal/config"
	"offboardadmin/internal/controller"
	"offboardadmin/internal/models/dto"
	"offboardadmin/internal/models/entities"
	"offboardadmin/internal/validation"

	"github.com/joho/godotenv"
)

const usage = `uso: admincli <comando> [opções]

comandos:
  dashboard             painel com estatísticas, gráficos e atividades
  funcionarios          lista funcionários (com busca e paginação)
  funcionario-criar     cadastra um funcionário
  funcionario-remover   remove um funcionário (bloqueado se tiver avaliações)
  perguntas             lista perguntas do banco de questões
  questionarios         lista questionários
  questionario-remover  remove um questionário em cascata
  avaliadores           lista avaliadores (somente leitura)
  avaliacoes            lista avaliações
  avaliacao-status      atualiza o status de uma avaliação
`

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatalf("Error loading .env file: %v", err)
		}
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewApp()
	if err != nil {
		log.Fatalf("Error creating config: %v", err)
	}
	defer cfg.CloseAll()

	ctx := context.Background()
	args := os.Args[2:]

	switch os.Args[1] {
	case "dashboard":
		err = runDashboard(ctx, cfg, args)
	case "funcionarios":
		err = runFuncionarios(ctx, cfg, args)
	case "funcionario-criar":
		err = runFuncionarioCriar(ctx, cfg, args)
	case "funcionario-remover":
		err = runFuncionarioRemover(ctx, cfg, args)
	case "perguntas":
		err = runPerguntas(ctx, cfg, args)
	case "questionarios":
		err = runQuestionarios(ctx, cfg, args)
	case "questionario-remover":
		err = runQuestionarioRemover(ctx, cfg, args)
	case "avaliadores":
		err = runAvaliadores(ctx, cfg, args)
	case "avaliacoes":
		err = runAvaliacoes(ctx, cfg, args)
	case "avaliacao-status":
		err = runAvaliacaoStatus(ctx, cfg, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "erro:", apiclient.UserMessage(err))
		os.Exit(1)
	}
}

func runDashboard(ctx context.Context, cfg *config.App, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	meses := fs.Int("meses", cfg.Settings.DashboardMes, "meses do gráfico de avaliações")
	limite := fs.Int("limite", cfg.Settings.AtividadesMax, "máximo de atividades recentes")
	_ = fs.Parse(args)

	d, err := cfg.API.LoadDashboard(ctx, *meses, *limite)
	if err != nil {
		return err
	}

	fmt.Printf("Funcionários: %d (em processo de saída: %d)\n",
		d.Estatisticas.TotalFuncionarios, d.Estatisticas.EmProcessoSaida)
	fmt.Printf("Avaliações: %d pendentes, %d concluídas\n\n",
		d.Estatisticas.AvaliacoesPendentes, d.Estatisticas.AvaliacoesConcluidas)

	fmt.Println("Avaliações por mês:")
	for _, m := range d.AvaliacoesPorMes {
		fmt.Printf("  %s  %d\n", m.Mes, m.Total)
	}
	fmt.Println("\nMotivos de saída:")
	for _, m := range d.MotivosSaida {
		fmt.Printf("  %-30s %d\n", m.Motivo, m.Total)
	}
	fmt.Println("\nStatus das avaliações:")
	for _, st := range d.StatusAvaliacoes {
		fmt.Printf("  %-15s %d\n", st.Status, st.Total)
	}
	fmt.Println("\nAtividades recentes:")
	for _, a := range d.AtividadesRecentes {
		fmt.Printf("  %s  %s\n", a.Data.Format("2006-01-02"), a.Descricao)
	}
	return nil
}

func runFuncionarios(ctx context.Context, cfg *config.App, args []string) error {
	fs := flag.NewFlagSet("funcionarios", flag.ExitOnError)
	busca := fs.String("busca", "", "filtro de texto aplicado à página atual")
	page := fs.Int("page", 1, "página")
	status := fs.String("status", "", "filtra por status")
	departamento := fs.String("departamento", "", "filtra por departamento")
	_ = fs.Parse(args)

	lista := controller.NewList(controller.ListConfig[entities.Funcionario]{
		Fetch: func(ctx context.Context, page, perPage int) (dto.ListResult[entities.Funcionario], error) {
			return cfg.API.ListFuncionarios(ctx, apiclient.FuncionarioListParams{
				Status:       *status,
				Departamento: *departamento,
				Page:         page,
				PerPage:      perPage,
			})
		},
		IDOf:     func(f entities.Funcionario) string { return f.CPF },
		Fields:   entities.Funcionario.SearchFields,
		PerPage:  cfg.Settings.PerPage,
		Describe: apiclient.UserMessage,
		Logger:   cfg.Logger,
	})

	if err := lista.Load(ctx); err != nil {
		return err
	}
	if *page > 1 {
		if err := lista.GoToPage(ctx, *page); err != nil {
			return err
		}
	}
	lista.SetTerm(*busca)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CPF\tNOME\tSETOR\tTIPO\tSTATUS")
	for _, f := range lista.Visible() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", f.CPF, f.Nome, f.Setor, f.Tipo, f.Status)
	}
	w.Flush()
	printPagination(lista.Pagination())
	return nil
}

func runFuncionarioCriar(ctx context.Context, cfg *config.App, args []string) error {
	fs := flag.NewFlagSet("funcionario-criar", flag.ExitOnError)
	cpf := fs.String("cpf", "", "CPF (com ou sem pontuação)")
	nome := fs.String("nome", "", "nome completo")
	email := fs.String("email", "", "email corporativo")
	setor := fs.String("setor", "", "departamento")
	ctps := fs.String("ctps", "", "CTPS")
	tipo := fs.String("tipo", entities.TipoCLT, "tipo de contrato")
	_ = fs.Parse(args)

	form := controller.NewForm(controller.FormConfig{
		Rules: validation.FuncionarioRules(),
		Submit: func(ctx context.Context, values map[string]string) error {
			_, err := cfg.API.CreateFuncionario(ctx, entities.Funcionario{
				CPF:    values["cpf"],
				Nome:   values["nome"],
				Email:  values["email"],
				Setor:  values["setor"],
				CTPS:   values["ctps"],
				Tipo:   values["tipo"],
				Status: entities.StatusAtivo,
			})
			return err
		},
		Describe: apiclient.UserMessage,
	})

	form.OpenWith(map[string]string{
		"cpf":   *cpf,
		"nome":  *nome,
		"email": *email,
		"setor": *setor,
		"ctps":  *ctps,
		"tipo":  *tipo,
	})
	if err := form.Submit(ctx); err != nil {
		if errors.Is(err, controller.ErrValidation) {
			for campo, msg := range form.Errors() {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", campo, msg)
			}
		}
		return err
	}
	fmt.Println("funcionário cadastrado")
	return nil
}

func runFuncionarioRemover(ctx context.Context, cfg *config.App, args []string) error {
	fs := flag.NewFlagSet("funcionario-remover", flag.ExitOnError)
	cpf := fs.String("cpf", "", "CPF do funcionário")
	_ = fs.Parse(args)

	alvo, err := cfg.API.GetFuncionario(ctx, *cpf)
	if err != nil {
		return err
	}

	lista := controller.NewList(controller.ListConfig[entities.Funcionario]{
		Fetch: func(ctx context.Context, page, perPage int) (dto.ListResult[entities.Funcionario], error) {
			return cfg.API.ListFuncionarios(ctx, apiclient.FuncionarioListParams{Page: page, PerPage: perPage})
		},
		IDOf:     func(f entities.Funcionario) string { return f.CPF },
		Fields:   entities.Funcionario.SearchFields,
		PerPage:  cfg.Settings.PerPage,
		Describe: apiclient.UserMessage,
		Logger:   cfg.Logger,
	})
	if err := lista.Load(ctx); err != nil {
		return err
	}

	remocao := controller.NewDelete(lista, func(ctx context.Context, f entities.Funcionario) error {
		return cfg.API.DeleteFuncionario(ctx, f.CPF)
	}, apiclient.UserMessage)

	remocao.SelectTarget(alvo)
	if err := remocao.Confirm(ctx); err != nil {
		return err
	}
	fmt.Println(remocao.Notice())
	return nil
}

func runPerguntas(ctx context.Context, cfg *config.App, args []string) error {
	fs := flag.NewFlagSet("perguntas", flag.ExitOnError)
	busca := fs.String("busca", "", "filtro de texto aplicado à página atual")
	page := fs.Int("page", 1, "página")
	categoria := fs.String("categoria", "", "filtra por categoria")
	_ = fs.Parse(args)

	lista := controller.NewList(controller.ListConfig[entities.Pergunta]{
		Fetch: func(ctx context.Context, page, perPage int) (dto.ListResult[entities.Pergunta], error) {
			return cfg.API.ListPerguntas(ctx, apiclient.PerguntaListParams{
				Categoria: *categoria,
				Page:      page,
				PerPage:   perPage,
			})
		},
		IDOf:     func(p entities.Pergunta) string { return strconv.Itoa(p.CodQuestao) },
		Fields:   entities.Pergunta.SearchFields,
		PerPage:  cfg.Settings.PerPage,
		Describe: apiclient.UserMessage,
		Logger:   cfg.Logger,
	})

	if err := lista.Load(ctx); err != nil {
		return err
	}
	if *page > 1 {
		if err := lista.GoToPage(ctx, *page); err != nil {
			return err
		}
	}
	lista.SetTerm(*busca)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COD\tTEXTO\tTIPO\tCATEGORIA\tOPÇÕES")
	for _, p := range lista.Visible() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			p.CodQuestao, p.TextoQuestao, p.TipoQuestao, p.Categoria, strings.Join(p.Opcoes, " | "))
	}
	w.Flush()
	printPagination(lista.Pagination())
	return nil
}

func runQuestionarios(ctx context.Context, cfg *config.App, args []string) error {
	fs := flag.NewFlagSet("questionarios", flag.ExitOnError)
	busca := fs.String("busca", "", "filtro de texto")
	_ = fs.Parse(args)

	lista := controller.NewList(controller.ListConfig[entities.Questionario]{
		Fetch: func(ctx context.Context, page, perPage int) (dto.ListResult[entities.Questionario], error) {
			return cfg.API.ListQuestionarios(ctx)
		},
		IDOf:     func(q entities.Questionario) string { return strconv.Itoa(q.ID) },
		Fields:   entities.Questionario.SearchFields,
		PerPage:  cfg.Settings.PerPage,
		Describe: apiclient.UserMessage,
		Logger:   cfg.Logger,
	})

	if err := lista.Load(ctx); err != nil {
		return err
	}
	lista.SetTerm(*busca)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME\tSTATUS\tPERGUNTAS\tAPLICAÇÕES")
	for _, q := range lista.Visible() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n",
			q.ID, q.DisplayName(), q.Status, q.TotalPerguntas, q.TotalAplicacoes)
	}
	w.Flush()
	return nil
}

func runQuestionarioRemover(ctx context.Context, cfg *config.App, args []string) error {
	fs := flag.NewFlagSet("questionario-remover", flag.ExitOnError)
	id := fs.Int("id", 0, "id do questionário")
	_ = fs.Parse(args)

	res, err := cfg.API.DeleteQuestionario(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("questionário removido: %d avaliações e %d respostas apagadas\n",
		res.AvaliacoesRemovidas, res.RespostasRemovidas)
	return nil
}

func runAvaliadores(ctx context.Context, cfg *config.App, args []string) error {
	fs := flag.NewFlagSet("avaliadores", flag.ExitOnError)
	busca := fs.String("busca", "", "filtro de texto")
	_ = fs.Parse(args)

	lista := controller.NewList(controller.ListConfig[entities.Avaliador]{
		Fetch: func(ctx context.Context, page, perPage int) (dto.ListResult[entities.Avaliador], error) {
			return cfg.API.ListAvaliadores(ctx)
		},
		IDOf:     func(a entities.Avaliador) string { return strconv.Itoa(a.ID) },
		Fields:   entities.Avaliador.SearchFields,
		PerPage:  cfg.Settings.PerPage,
		Describe: apiclient.UserMessage,
		Logger:   cfg.Logger,
	})

	if err := lista.Load(ctx); err != nil {
		return err
	}
	lista.SetTerm(*busca)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME\tSETOR\tSTATUS\tCERTIFICADOS")
	for _, a := range lista.Visible() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", a.ID, a.Nome, a.Setor, a.Status, a.TotalCertificados)
	}
	w.Flush()
	return nil
}

func runAvaliacoes(ctx context.Context, cfg *config.App, args []string) error {
	fs := flag.NewFlagSet("avaliacoes", flag.ExitOnError)
	busca := fs.String("busca", "", "filtro de texto")
	status := fs.String("status", "", "filtra por status")
	funcionario := fs.String("funcionario", "", "filtra por CPF do funcionário")
	_ = fs.Parse(args)

	lista := controller.NewList(controller.ListConfig[entities.Avaliacao]{
		Fetch: func(ctx context.Context, page, perPage int) (dto.ListResult[entities.Avaliacao], error) {
			return cfg.API.ListAvaliacoes(ctx, apiclient.AvaliacaoListParams{
				Status:      *status,
				Funcionario: *funcionario,
			})
		},
		IDOf:     func(a entities.Avaliacao) string { return strconv.Itoa(a.ID) },
		Fields:   entities.Avaliacao.SearchFields,
		PerPage:  cfg.Settings.PerPage,
		Describe: apiclient.UserMessage,
		Logger:   cfg.Logger,
	})

	if err := lista.Load(ctx); err != nil {
		return err
	}
	lista.SetTerm(*busca)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFUNCIONÁRIO\tQUESTIONÁRIO\tSTATUS\tMOTIVO")
	for _, a := range lista.Visible() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			a.ID, a.FuncionarioNome, a.QuestionarioID, a.Status, a.MotivoSaida)
	}
	w.Flush()
	return nil
}

func runAvaliacaoStatus(ctx context.Context, cfg *config.App, args []string) error {
	fs := flag.NewFlagSet("avaliacao-status", flag.ExitOnError)
	id := fs.Int("id", 0, "id da avaliação")
	status := fs.String("status", "", "novo status")
	_ = fs.Parse(args)

	a, err := cfg.API.UpdateAvaliacaoStatus(ctx, *id, *status)
	if err != nil {
		return err
	}
	fmt.Printf("avaliação %d agora está %q\n", a.ID, a.Status)
	return nil
}

// printPagination imprime a janela de páginas do jeito que o painel mostra.
func printPagination(pag *dto.Pagination) {
	if pag == nil {
		return
	}
	marcas := make([]string, 0, 5)
	for _, n := range pag.Window() {
		if n == pag.Page {
			marcas = append(marcas, fmt.Sprintf("[%d]", n))
			continue
		}
		marcas = append(marcas, strconv.Itoa(n))
	}
	fmt.Printf("\npágina %d de %d (%d registros)  %s\n",
		pag.Page, pag.TotalPages, pag.Total, strings.Join(marcas, " "))
}
