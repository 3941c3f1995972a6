package assessment

import (
	"strings"

	"github.com/hlifeacademy/dna-backend/internal/catalog"
)

// Insight is the per-factor narrative block shown on the dashboard.
type Insight struct {
	ProfileName string   `json:"profile_name"`
	Strengths   []string `json:"strengths"`
	Leadership  []string `json:"leadership"`
}

var discInsights = map[catalog.Factor]Insight{
	catalog.FactorD: {
		ProfileName: "Dominante",
		Strengths:   []string{"Determinação", "Foco em resultados", "Rapidez na decisão", "Competitividade"},
		Leadership:  []string{"Líder comando-controle", "Visionário e estrategista", "Exigente com prazos", "Assume riscos"},
	},
	catalog.FactorI: {
		ProfileName: "Influente",
		Strengths:   []string{"Comunicação persuasiva", "Entusiasmo", "Criatividade", "Networking"},
		Leadership:  []string{"Líder inspirador", "Motivador de equipas", "Aberto a inovações", "Promove colaboração"},
	},
	catalog.FactorS: {
		ProfileName: "Estável",
		Strengths:   []string{"Paciência", "Lealdade", "Planejamento e organização", "Escuta ativa"},
		Leadership:  []string{"Líder servidor", "Focado em processos", "Consensual e conciliador", "Transmite segurança"},
	},
	catalog.FactorC: {
		ProfileName: "Conforme",
		Strengths:   []string{"Precisão e qualidade", "Análise crítica", "Disciplina", "Rigor técnico"},
		Leadership:  []string{"Líder especialista", "Baseado em dados", "Cauteloso e estruturado", "Alto padrão de qualidade"},
	},
}

var discFullNames = map[catalog.Factor]string{
	catalog.FactorD: "Dominância (D)",
	catalog.FactorI: "Influência (I)",
	catalog.FactorS: "Estabilidade (S)",
	catalog.FactorC: "Conformidade (C)",
}

var pureProfileDescriptions = map[catalog.Factor]string{
	catalog.FactorD: "Dominância é o fator do controle e da assertividade. Pessoas com alta intensidade 'D' são diretas, ousadas, competitivas e focadas em resultados. Lutam energicamente para atingir seus objetivos e acreditam ser necessário estar no controle. Tendem a ser determinadas, decididas e visionárias, às vezes parecendo rígidas ou severas devido à sua postura firme. Para elas, o desejo de ganhar é maior que o medo de perder.",
	catalog.FactorI: "Influência é o jeito como se comunica e interage. Pessoas com alta intensidade 'I' são extrovertidas, otimistas, sociáveis e persuasivas. Trabalham bem em equipe, contagiando o ambiente com entusiasmo. Valorizam o reconhecimento social e status, gostam de compartilhar ideias e de serem queridas por todos. São criativas e rápidas para agir, mas podem ter dificuldade em focar em uma coisa só até o fim.",
	catalog.FactorS: "Estabilidade é a capacidade de manter o equilíbrio, empatia e lealdade. Pessoas com alta intensidade 'S' são boas ouvintes, atenciosas e valorizam relacionamentos duradouros. Preferem rotina, previsibilidade e planejamento, evitando mudanças bruscas. São pacientes, perseverantes e buscam consenso. Preocupam-se genuinamente com o bem-estar dos outros e estão sempre prontas para ajudar/servir.",
	catalog.FactorC: "Conformidade é o fator da estrutura, detalhes e regras. Pessoas com alta intensidade 'C' são lógicas, analíticas, precisas e disciplinadas. Tomam decisões cautelosas baseadas em fatos e dados. Valorizam a qualidade, o perfeccionismo e a organização. Tendem a ser mais reservadas e formais. Seu foco é a excelência e evitar erros, o que pode torná-las críticas e exigentes consigo e com os outros.",
}

// combinationDescriptions is keyed by the ordered top-two pair. The order
// matters: "DI" and "ID" are distinct profiles with distinct text.
var combinationDescriptions = map[string]string{
	"DI": "É objetivo e direto, mas consegue envolver as pessoas com sua capacidade de persuasão e argumentação. A combinação da coragem e ousadia do Alto D com o otimismo do Alto I contribuem para ter facilidade para conduzir as pessoas de forma inspiradora. Tende a ser visionário e criativo, com boa capacidade para formular novas ideias, porém com certa dificuldade para terminá-las. Será mais sério e formal ou mais relaxado e sorridente, dependendo da situação. Tende ao hábito de interromper os outros, principalmente quando não concorda com eles.",
	"DS": "Perfil incomum. Parece relaxado e tranquilo, mas a mente está a mil, sempre buscando alcançar os resultados que almeja. Gosta de desafios e é ousado, no entanto, sem ansiedade, aflição ou excitação evidente. Tende a ser paternalista em relação às pessoas que o cercam, defendendo-as e protegendo-as. Devido à combinação de perfis dicotômicos, pode apresentar atitudes opostas: por exemplo, tranquilidade em certos momentos e agitação em outros.",
	"DC": "Lógico, racional, pragmático e impessoal. Totalmente voltado para tarefas, com pouco interesse em pessoas. Muito exigente consigo e com os outros, tem baixa tolerância a erros. Corre riscos, porém de maneira calculada. Pode se sobrecarregar, pois tende a centralizar decisões e tarefas. É um perfil de muita execução.",
	"ID": "Tem um forte perfil motivador e inspirador, com mais habilidade de cativar as pessoas que o perfil DI. Sonhador e carismático, conquista as pessoas e as convence de seu ponto de vista. Tende a ser visionário e criativo, com boa capacidade para formular novas ideias, porém com certa dificuldade para terminá-las. De perfil generalista, põe tarefas mais detalhistas e processuais em segundo plano.",
	"IS": "Totalmente voltado para pessoas e relacionamentos, podendo até deixar as tarefas de lado para satisfazer a sua necessidade de conexão. Amistoso e sociável, tem facilidade para lidar com as emoções dos outros. Muito comunicativo, tende a falar mais do que ouvir, embora também seja um bom ouvinte. Pode ter dificuldade para se impor e dizer não, tanto por querer evitar conflitos (Alto S) quanto por desejar ser querido (Alto I).",
	"IC": "Perfil incomum. Persuasivo e bom comunicador, argumenta com base em fatos e dados. Num primeiro contato, aparenta ser mais reservado, no entanto, logo se mostra aberto, comunicativo e sociável. Interage de forma equilibrada, sem excessos ou indiscrições. Facilidade em atividades que exijam lidar com pessoas e com assuntos técnicos, como suporte ou treinamentos especializados.",
	"SD": "Perfil incomum. Gosta de ter o poder de decisão para implantar suas próprias ideias da sua forma: com método, planejamento e dentro do seu próprio ritmo. Incomoda-se com supervisão (Alto D) e com pressão de tempo (Alto S). Tem aparência relaxada e tranquila, mas a mente está a mil. É calmo e paciente, mas pode se exaltar quando sua autoridade ou autonomia forem questionadas. Devido à combinação de perfis dicotômicos, pode apresentar atitudes opostas: por exemplo, tranquilidade em certos momentos e agitação em outros.",
	"SI": "Totalmente voltado para pessoas e relacionamentos, podendo até deixar as tarefas de lado para satisfazer a sua necessidade de conexão. Pode ser necessário maior direcionamento para conseguir manter o foco em suas atividades. Gosta de dar e de receber apoio, valoriza muito o trabalho em equipe. Pensativo, tende a ouvir mais do que falar, embora também se expresse bem. Pode ter dificuldade para se impor e dizer não, tanto por querer evitar conflitos (Alto S), quanto por desejar ser querido (Alto I).",
	"SC": "Tende a apresentar um perfil mais técnico e especialista, com grande facilidade com planejamento, organização, coordenação e atenção a detalhes e pormenores. Busca segurança em dados e informações. Toma decisões com muita cautela e após refletir bastante. É bom ouvinte e muito observador. Tende a evitar o confronto, mesmo quando discorda das decisões. Quando inicia um projeto, esforça-se para concluí-lo com o máximo de qualidade possível.",
	"CD": "Está mais voltado a tarefas e procedimentos do que a assuntos emocionais e pessoais. Busca alto nível de qualidade, com forte tendência para atividades de controle. Possui habilidade com tarefas que exijam atenção aos detalhes e se adequem a altos padrões. Tende a usar as estruturas e as regras como fator de controle sobre o ambiente para alcançar seus objetivos. O relacionamento interpessoal não é prioridade desse estilo, seu foco é a realização de suas metas. Possui forte tendência a corrigir as outras pessoas, dando muita ênfase nas falhas que cometeram, mesmo que outros as considerem insignificantes.",
	"CI": "Perfil incomum. É analítico, racional e tende a ser mais reservado. No entanto, em ambientes que já conhece bem, é aberto, comunicativo e sociável. Possui habilidades com tarefas que exijam precisão e atenção aos detalhes, com grande potencial para atuar em treinamentos técnicos, como multiplicador de projetos que exijam qualidade. É organizado e cauteloso, mesmo nos relacionamentos pessoais, buscando falar a coisa certa na hora certa.",
	"CS": "Possui estilo reservado e cauteloso. Leva tempo para confiar e se envolver com as pessoas. Sempre alerta a possíveis erros, busca segurança no acúmulo de informações e decide apenas após analisar os dados e as possíveis consequências. Tende a apresentar um perfil mais técnico e especialista, com grande facilidade com planejamento, organização, coordenação e atenção a detalhes e pormenores. Capaz de produzir trabalhos minuciosos que outros estilos não teriam paciência para conduzir até o fim. Quando inicia um projeto, esforça-se para concluí-lo com excelência e dentro do prazo estabelecido.",
}

var motivatorNames = map[catalog.Factor]string{
	catalog.FactorPolitical: "Político",
	catalog.FactorEconomic:  "Econômico",
	catalog.FactorReligious: "Religioso",
	catalog.FactorSocial:    "Social",
	catalog.FactorAesthetic: "Estético",
	catalog.FactorTheoretic: "Teórico",
}

var motivatorDescriptions = map[catalog.Factor]string{
	catalog.FactorPolitical: "Busca poder, liderança e controle sobre o próprio destino. Ambicioso, deseja se destacar e alcançar status. Valoriza a ascensão profissional e gosta de liderar, comandar e guiar pessoas rumo a objetivos grandiosos. Seu foco é no sucesso e no reconhecimento.",
	catalog.FactorEconomic:  "Valoriza a utilidade prática e o retorno sobre o investimento de seus recursos (tempo, dinheiro, energia). Foca na relação custo-benefício, na eficiência e no acúmulo de bens. Busca sempre fazer mais com menos e odeia desperdícios. É prático e pragmático.",
	catalog.FactorReligious: "Guiado por um sistema de princípios, crenças e valores rígidos (religiosos ou éticos). Busca sentido na vida e age de acordo com suas convicções morais. Valoriza a tradição e tende a querer viver de forma alinhada com o que acredita ser o 'certo'.",
	catalog.FactorSocial:    "Movido pelo altruísmo e pelo desejo de contribuir para um mundo melhor. Coloca os interesses dos outros à frente dos seus e se dedica a ajudar, servir e desenvolver pessoas. É generoso, empático e busca eliminar a dor e o conflito social.",
	catalog.FactorAesthetic: "Busca harmonia, equilíbrio e apreciação da beleza e da forma. Valoriza a estética e as experiências subjetivas. Deseja qualidade de vida e expressar sua criatividade. Para este perfil, a forma e a experiência são tão importantes quanto a função.",
	catalog.FactorTheoretic: "Buscador insaciável da verdade e do conhecimento. Racional e investigativo, quer entender o 'porquê' das coisas. Valoriza o aprendizado contínuo, a sistematização de saberes e a análise lógica. Prioriza a educação e a competência técnica.",
}

func InsightFor(f catalog.Factor) Insight {
	return discInsights[f]
}

func DiscFullName(f catalog.Factor) string {
	return discFullNames[f]
}

func MotivatorName(f catalog.Factor) string {
	return motivatorNames[f]
}

func MotivatorDescription(f catalog.Factor) string {
	return motivatorDescriptions[f]
}

// ProfileDescription returns the narrative paragraph for a classification:
// the ordered top-two combination when two or more factors are high, the
// pure-profile paragraph otherwise. Beyond two high factors only the top
// pair drives the paragraph; the profile code still carries every letter.
func ProfileDescription(c Classification) string {
	if len(c.Factors) >= 2 {
		key := string(c.Factors[0]) + string(c.Factors[1])
		return combinationDescriptions[key]
	}
	return pureProfileDescriptions[c.Factors[0]]
}

// ProfileDisplayName joins the per-factor profile names, e.g.
// "Dominante - Influente" for code "DI".
func ProfileDisplayName(c Classification) string {
	names := make([]string, 0, len(c.Factors))
	for _, f := range c.Factors {
		names = append(names, discInsights[f].ProfileName)
	}
	return strings.Join(names, " - ")
}

// CombinedStrengths and CombinedLeadership concatenate the per-factor lists
// across every qualifying factor, in code order.
func CombinedStrengths(c Classification) []string {
	var out []string
	for _, f := range c.Factors {
		out = append(out, discInsights[f].Strengths...)
	}
	return out
}

func CombinedLeadership(c Classification) []string {
	var out []string
	for _, f := range c.Factors {
		out = append(out, discInsights[f].Leadership...)
	}
	return out
}
