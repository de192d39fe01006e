package ai

import (
	"encoding/json"
	"fmt"
	"time"

	apptRepo "github.com/pros100kyiv/HUBbase-sub001/database/repository/appointment"
	clientRepo "github.com/pros100kyiv/HUBbase-sub001/database/repository/client"
	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/services/schedule"

	genai "github.com/google/generative-ai-go/genai"
)

// nowFunc is swapped in tests to pin the current day.
var nowFunc = time.Now

// ToolSet executes the assistant's data tools against the business's own
// records. Every tool is read-only and returns a compact JSON-able summary.
type ToolSet struct {
	Engine       *schedule.Engine
	Clients      clientRepo.ClientRepository
	Appointments apptRepo.AppointmentRepository
}

// Dispatch runs one named tool with the model-supplied arguments. Unknown
// tools are an error; bad argument values are coerced or clamped, never
// rejected.
func (t *ToolSet) Dispatch(name string, args map[string]any) (map[string]any, error) {
	switch name {
	case "free_slots":
		res, err := t.Engine.FreeSlots(schedule.FreeSlotsArgs{
			Date:            argString(args, "date"),
			DurationMinutes: argInt(args, "durationMinutes"),
			Limit:           argInt(args, "limit"),
			MasterID:        argString(args, "masterId"),
			MasterName:      argString(args, "masterName"),
		})
		if err != nil {
			return nil, err
		}
		return toMap(res)
	case "gaps_summary":
		res, err := t.Engine.GapsSummary(schedule.GapsArgs{
			Date:          argString(args, "date"),
			MinGapMinutes: argInt(args, "minGapMinutes"),
			Limit:         argInt(args, "limit"),
			MasterID:      argString(args, "masterId"),
			MasterName:    argString(args, "masterName"),
		})
		if err != nil {
			return nil, err
		}
		return toMap(res)
	case "who_working":
		res, err := t.Engine.WhoWorking(argString(args, "date"))
		if err != nil {
			return nil, err
		}
		return toMap(res)
	case "schedule_overview":
		res, err := t.Engine.ScheduleOverview()
		if err != nil {
			return nil, err
		}
		return toMap(res)
	case "find_client":
		return t.findClient(argString(args, "query"))
	case "day_appointments":
		return t.dayAppointments(argString(args, "date"), argString(args, "masterId"), argString(args, "masterName"))
	default:
		return nil, fmt.Errorf("unknown tool %q", name)
	}
}

const findClientLimit = 10

func (t *ToolSet) findClient(query string) (map[string]any, error) {
	if query == "" {
		return map[string]any{"error": "query_required", "hint": "supply a name or phone fragment"}, nil
	}
	clients, err := t.Clients.Search(query)
	if err != nil {
		return nil, err
	}
	total := len(clients)
	if len(clients) > findClientLimit {
		clients = clients[:findClientLimit]
	}
	out := make([]map[string]any, 0, len(clients))
	for _, c := range clients {
		out = append(out, map[string]any{"id": c.ID, "name": c.Name, "phone": c.Phone})
	}
	return map[string]any{"query": query, "clients": out, "total": total}, nil
}

func (t *ToolSet) dayAppointments(date, masterID, masterName string) (map[string]any, error) {
	date = schedule.NormalizeDate(date, nowFunc())

	var appts []models.Appointment
	var masterRef map[string]any
	if masterID != "" || masterName != "" {
		m, err := t.Engine.ResolveMaster(masterID, masterName)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return map[string]any{"date": date, "error": "master_required", "hint": "supply masterId or masterName to pick a master"}, nil
		}
		masterRef = map[string]any{"id": m.ID, "name": m.Name}
		appts, err = t.Appointments.GetByMasterAndDate(m.ID, date)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		appts, err = t.Appointments.GetByDate(date)
		if err != nil {
			return nil, err
		}
	}

	out := make([]map[string]any, 0, len(appts))
	for _, a := range appts {
		out = append(out, map[string]any{
			"id":     a.ID,
			"master": a.MasterID,
			"client": a.ClientName,
			"start":  a.StartTime,
			"end":    a.EndTime,
			"status": a.Status,
		})
	}
	res := map[string]any{"date": date, "appointments": out, "total": len(appts)}
	if masterRef != nil {
		res["master"] = masterRef
	}
	return res, nil
}

// toMap round-trips a result struct through JSON so tool outputs use the
// same field names the HTTP API exposes.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// argInt coerces a model-supplied argument to int. Gemini sends numbers as
// float64; tolerate strings too.
func argInt(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return 0
}

// Declarations describes the data tools to the model.
func Declarations() []*genai.Tool {
	masterArgs := map[string]*genai.Schema{
		"masterId":   {Type: genai.TypeString, Description: "exact master id"},
		"masterName": {Type: genai.TypeString, Description: "master name or a fragment of it"},
	}
	withMaster := func(extra map[string]*genai.Schema) map[string]*genai.Schema {
		out := map[string]*genai.Schema{}
		for k, v := range masterArgs {
			out[k] = v
		}
		for k, v := range extra {
			out[k] = v
		}
		return out
	}
	dateSchema := &genai.Schema{Type: genai.TypeString, Description: "date in YYYY-MM-DD format, defaults to today"}

	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "free_slots",
				Description: "List free bookable start times for one master on one date.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: withMaster(map[string]*genai.Schema{
						"date":            dateSchema,
						"durationMinutes": {Type: genai.TypeInteger, Description: "requested booking duration in minutes"},
						"limit":           {Type: genai.TypeInteger, Description: "maximum number of slots to return"},
					}),
				},
			},
			{
				Name:        "gaps_summary",
				Description: "List idle gaps between bookings for one master on one date, largest first.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: withMaster(map[string]*genai.Schema{
						"date":          dateSchema,
						"minGapMinutes": {Type: genai.TypeInteger, Description: "minimum gap length in minutes"},
						"limit":         {Type: genai.TypeInteger, Description: "maximum number of gaps to return"},
					}),
				},
			},
			{
				Name:        "who_working",
				Description: "List which masters work on a date, with their hours, and which are off.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{"date": dateSchema},
				},
			},
			{
				Name:        "schedule_overview",
				Description: "Summarize every master's working days and booked appointments for the coming week.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{},
				},
			},
			{
				Name:        "find_client",
				Description: "Search the client roster by name or phone fragment.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query": {Type: genai.TypeString, Description: "name or phone fragment"},
					},
					Required: []string{"query"},
				},
			},
			{
				Name:        "day_appointments",
				Description: "List the appointments on a date, optionally for one master only.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: withMaster(map[string]*genai.Schema{
						"date": dateSchema,
					}),
				},
			},
		},
	}}
}
