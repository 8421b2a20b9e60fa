// Package classifying atribui cada lançamento financeiro a uma categoria contábil
package classifying

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/pkg/utils"
)

// Ordem de prioridade para saídas. A primeira categoria que casa vence.
var outflowPriority = []domain.Bucket{
	domain.BucketTax,
	domain.BucketPayroll,
	domain.BucketVendorPayment,
	domain.BucketFinancing,
	domain.BucketInvestment,
	domain.BucketCOGS,
}

// Tabela única de palavras-chave, já sem acentos e em minúsculas
var keywords = map[domain.Bucket][]string{
	domain.BucketTax: {
		"imposto", "tributo", "irpj", "irpf", "irrf", "csll", "pis", "cofins",
		"iss", "icms", "darf", "simples nacional", "contribuicao social",
	},
	domain.BucketPayroll: {
		"salario", "folha", "equipe", "funcionario", "colaborador", "clt", "pj",
		"comissao", "fgts", "ferias", "rescisao", "beneficio",
	},
	domain.BucketVendorPayment: {
		"fornecedor", "ferramenta", "software", "servico", "assinatura", "licenca", "operacao",
	},
	domain.BucketFinancing: {
		"juros", "multa", "iof", "tarifa", "taxa", "encargo", "emprestimo", "financiamento", "financeiro",
	},
	domain.BucketInvestment: {
		"investimento", "ativo", "equipamento", "expansao", "imobilizado",
	},
	domain.BucketCOGS: {
		"cmv", "csp", "insumo", "mercadoria", "materia-prima", "custo direto",
	},
}

// Estornos e cancelamentos reduzem a receita em vez de compor custo
var deductionKeywords = []string{
	"estorno", "devolucao", "cancelamento", "chargeback", "reembolso",
}

// Retiradas dos sócios vão para o fluxo de financiamento
var distributionKeywords = []string{
	"distribuicao", "dividendo", "lucro", "pro-labore", "prolabore", "socio", "societario",
}

// Classifier é determinístico e não guarda estado entre chamadas
type Classifier struct {
	keywords     map[domain.Bucket][]string
	deductions   []string
	distribution []string
}

func NewClassifier() *Classifier {
	return &Classifier{
		keywords:     keywords,
		deductions:   deductionKeywords,
		distribution: distributionKeywords,
	}
}

// Classify retorna a categoria do lançamento.
// Saídas testam cada categoria, em ordem de prioridade, contra categoria, rótulo de custo e
// centro de custo. A primeira categoria com casamento em qualquer campo vence; sem casamento
// vira other_operating.
// Entradas são receita, a não ser que carreguem palavra de estorno ou cancelamento.
func (c *Classifier) Classify(record domain.FinancialRecord) domain.Bucket {
	fields := textFields(record)

	if record.IsInflow() {
		for _, field := range fields {
			if matchesAny(field, c.deductions) {
				return domain.BucketOtherOperating
			}
		}
		return domain.BucketRevenue
	}

	for _, bucket := range outflowPriority {
		for _, field := range fields {
			if matchesAny(field, c.keywords[bucket]) {
				return bucket
			}
		}
	}

	return domain.BucketOtherOperating
}

// IsRevenueDeduction indica uma saída que reduz a receita bruta: imposto sobre receita ou cancelamento
func (c *Classifier) IsRevenueDeduction(record domain.FinancialRecord) bool {
	if !record.IsOutflow() {
		return false
	}
	if c.Classify(record) == domain.BucketTax {
		return true
	}
	return c.hasKeyword(record, c.deductions)
}

// IsDistribution indica uma saída para os sócios.
// Imposto nunca é distribuição, mesmo quando cita lucro ou sócio.
func (c *Classifier) IsDistribution(record domain.FinancialRecord) bool {
	if !record.IsOutflow() {
		return false
	}
	if c.Classify(record) == domain.BucketTax {
		return false
	}
	if MatchesCostCenter(record, domain.CostCenterOwnership) {
		return true
	}
	return matchesAny(utils.FoldPtr(record.Category), c.distribution) ||
		matchesAny(utils.FoldPtr(record.CostLabel), c.distribution)
}

// IsInvestment indica compra de ativo: tipo de custo investimento ou palavra-chave de investimento
func (c *Classifier) IsInvestment(record domain.FinancialRecord) bool {
	if !record.IsOutflow() {
		return false
	}
	if MatchesCostType(record, domain.CostTypeInvestment) {
		return true
	}
	return c.Classify(record) == domain.BucketInvestment
}

func (c *Classifier) hasKeyword(record domain.FinancialRecord, list []string) bool {
	for _, field := range textFields(record) {
		if matchesAny(field, list) {
			return true
		}
	}
	return false
}

// MatchesCostCenter compara o centro de custo ignorando caixa e acentos
func MatchesCostCenter(record domain.FinancialRecord, center string) bool {
	return utils.FoldPtr(record.CostCenter) == center
}

// MatchesCostType compara o tipo de custo ignorando caixa e acentos
func MatchesCostType(record domain.FinancialRecord, costType string) bool {
	return utils.FoldPtr(record.CostType) == costType
}

func textFields(record domain.FinancialRecord) []string {
	return []string{
		utils.FoldPtr(record.Category),
		utils.FoldPtr(record.CostLabel),
		utils.FoldPtr(record.CostCenter),
	}
}

func matchesAny(text string, list []string) bool {
	if text == "" {
		return false
	}
	for _, keyword := range list {
		if matchesWordPrefix(text, keyword) {
			return true
		}
	}
	return false
}

// matchesWordPrefix exige que a palavra-chave comece uma palavra do texto,
// para que "iss" não case com "comissao"
func matchesWordPrefix(text, keyword string) bool {
	offset := 0
	for {
		idx := strings.Index(text[offset:], keyword)
		if idx < 0 {
			return false
		}
		start := offset + idx
		if start == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			return true
		}
		offset = start + 1
	}
}
