package entities

// Assistant action vocabulary. The assistant never calls fiscal APIs itself;
// it only returns one of these structured actions for the backend to execute.
const (
	ActionEmitirNFSe         = "emitir_nfse"
	ActionConsultarStatus    = "consultar_status"
	ActionListarNotas        = "listar_notas"
	ActionVerificarConexao   = "verificar_conexao"
	ActionExplicarErroFiscal = "explicar_erro_fiscal"
	ActionExplicar           = "explicar"
)

// AssistantActionData carries the parameters the assistant extracted for the
// action. Fields are optional; which ones are meaningful depends on the
// action type.
type AssistantActionData struct {
	ClienteNome      string  `json:"cliente_nome,omitempty"`
	ClienteDocumento string  `json:"cliente_documento,omitempty"`
	DescricaoServico string  `json:"descricao_servico,omitempty"`
	Valor            float64 `json:"valor,omitempty"`
	AliquotaISS      float64 `json:"aliquota_iss,omitempty"`
	Municipio        string  `json:"municipio,omitempty"`
	Numero           string  `json:"numero,omitempty"`
	Status           string  `json:"status,omitempty"`
}

// AssistantAction is one structured invoice-related command.
type AssistantAction struct {
	Type string              `json:"type"`
	Data AssistantActionData `json:"data"`
}

// AssistantInterpretation is the structured result of interpreting a natural
// language request. Action is nil when no executable action was recognized.
type AssistantInterpretation struct {
	Action               *AssistantAction `json:"action"`
	Explanation          string           `json:"explanation"`
	RequiresConfirmation bool             `json:"requiresConfirmation"`
}

// ChatMessage is one turn of the assistant conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
