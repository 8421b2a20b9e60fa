package domain

// Bucket é a categoria contábil de um lançamento
type Bucket string

const (
	BucketRevenue        Bucket = "revenue"
	BucketCOGS           Bucket = "cogs"
	BucketPayroll        Bucket = "payroll"
	BucketTax            Bucket = "tax"
	BucketVendorPayment  Bucket = "vendor_payment"
	BucketFinancing      Bucket = "financing"
	BucketInvestment     Bucket = "investment"
	BucketOtherOperating Bucket = "other_operating"
)

// Centros de custo e tipos de custo reconhecidos, já sem acentos
const (
	CostCenterOperations     = "operacao"
	CostCenterCommercial     = "comercial"
	CostCenterAdministrative = "administrativo"
	CostCenterFinancial      = "financeiro"
	CostCenterOwnership      = "societario"

	CostTypeFixed      = "fixo"
	CostTypeVariable   = "variavel"
	CostTypeInvestment = "investimento"
	CostTypeOneOff     = "pontual"
)
