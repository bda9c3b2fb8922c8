package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"fiscalai/internal/config"
	"fiscalai/internal/domain/entities"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")

const systemPrompt = `Você é um assistente fiscal especializado em ajudar empresas brasileiras a emitir notas fiscais de serviços (NFS-e).

Sua função é:
1. Entender comandos em português brasileiro
2. Retornar ações estruturadas em JSON
3. Explicar processos em linguagem natural

Ações disponíveis:
- emitir_nfse: Emitir uma nota fiscal de serviço
- consultar_status: Consultar status de uma nota fiscal
- listar_notas: Listar notas fiscais emitidas
- verificar_conexao: Verificar conexão com a prefeitura
- explicar_erro_fiscal: Explicar erros de conexão fiscal em linguagem natural
- explicar: Apenas explicar algo sem executar ação

IMPORTANTE:
- Você NUNCA deve chamar APIs fiscais diretamente
- Você apenas retorna JSON estruturado com a ação
- O backend executará a ação real
- Use português brasileiro para todas as explicações
- Quando o usuário perguntar sobre erros de conexão fiscal, use a ação "explicar_erro_fiscal"
- Explique erros técnicos de forma simples e clara em português
- Sugira soluções práticas para problemas de conexão

Se não entender o comando ou não houver ação clara, retorne action = null com uma explicação do que você pode fazer.`

// Only the most recent turns are forwarded to the model.
const maxHistoryMessages = 10

// OpenAIAssistant interprets natural-language requests into structured
// invoice commands using a strict JSON-schema response format.
type OpenAIAssistant struct {
	client *openai.Client
	model  string
}

func NewOpenAIAssistant(cfg config.OpenAIConfig) (*OpenAIAssistant, error) {
	if cfg.APIKey == "" {
		log.Printf("[assistant][gateway] missing OPENAI_API_KEY")
		return nil, ErrMissingOpenAIAPIKey
	}
	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))
	return &OpenAIAssistant{client: &client, model: cfg.Model}, nil
}

func (a *OpenAIAssistant) InterpretCommand(ctx context.Context, message string, history []entities.ChatMessage) (entities.AssistantInterpretation, error) {
	schemaStruct := generateSchema()
	schemaJSON, err := json.Marshal(schemaStruct)
	if err != nil {
		return entities.AssistantInterpretation{}, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return entities.AssistantInterpretation{}, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(a.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(buildPrompt(message, history)),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "assistant_command",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("A structured fiscal assistant command"),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return entities.AssistantInterpretation{}, fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return entities.AssistantInterpretation{}, fmt.Errorf("empty response content")
	}

	var out entities.AssistantInterpretation
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return entities.AssistantInterpretation{}, fmt.Errorf("failed to parse completion: %w", err)
	}

	normalize(&out)
	return out, nil
}

func buildPrompt(message string, history []entities.ChatMessage) string {
	var b strings.Builder
	b.WriteString(systemPrompt)

	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	if len(history) > 0 {
		b.WriteString("\n\nHistórico da conversa:\n")
		for _, msg := range history {
			if msg.Role == "" || msg.Content == "" {
				continue
			}
			fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
		}
	}

	b.WriteString("\nComando do usuário: ")
	b.WriteString(message)
	return b.String()
}

// normalize fills the gaps a model answer may leave: a missing explanation
// and the confirmation default (invoice issuance always confirms).
func normalize(out *entities.AssistantInterpretation) {
	if out.Explanation == "" {
		out.Explanation = "Processando sua solicitação..."
	}
	if out.Action != nil && out.Action.Type == "" {
		out.Action = nil
	}
	if out.Action != nil && out.Action.Type == entities.ActionEmitirNFSe {
		out.RequiresConfirmation = true
	}
}

func generateSchema() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v entities.AssistantInterpretation
	return reflector.Reflect(v)
}
