// Package pb holds the records persisted by the storm engine. The messages mirror bracket.proto and are
// kept in sync with it by hand: field numbers and names in the protobuf tags must match the .proto file,
// and storm needs its id and index tags, which protoc cannot emit
package pb

import proto "github.com/gogo/protobuf/proto"

type Rating struct {
	GameType string `protobuf:"bytes,1,opt,name=game_type,json=gameType,proto3" json:"game_type,omitempty"`
	Value    int32  `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Rating) Reset()         { *m = Rating{} }
func (m *Rating) String() string { return proto.CompactTextString(m) }
func (*Rating) ProtoMessage()    {}

type Competitor struct {
	Id      string    `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty" storm:"id"`
	Name    string    `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty" storm:"index"`
	Ratings []*Rating `protobuf:"bytes,3,rep,name=ratings,proto3" json:"ratings,omitempty"`
}

func (m *Competitor) Reset()         { *m = Competitor{} }
func (m *Competitor) String() string { return proto.CompactTextString(m) }
func (*Competitor) ProtoMessage()    {}

type Bracket struct {
	Id        string   `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty" storm:"id"`
	Created   int64    `protobuf:"varint,2,opt,name=created,proto3" json:"created,omitempty"`
	GameType  string   `protobuf:"bytes,3,opt,name=game_type,json=gameType,proto3" json:"game_type,omitempty"`
	Rounds    int32    `protobuf:"varint,4,opt,name=rounds,proto3" json:"rounds,omitempty"`
	Seeds     []string `protobuf:"bytes,5,rep,name=seeds,proto3" json:"seeds,omitempty"`
	Winners   []string `protobuf:"bytes,6,rep,name=winners,proto3" json:"winners,omitempty"`
	Version   uint64   `protobuf:"varint,7,opt,name=version,proto3" json:"version,omitempty"`
	Committed bool     `protobuf:"varint,8,opt,name=committed,proto3" json:"committed,omitempty"`
}

func (m *Bracket) Reset()         { *m = Bracket{} }
func (m *Bracket) String() string { return proto.CompactTextString(m) }
func (*Bracket) ProtoMessage()    {}

type Entrant struct {
	Id        string   `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty" storm:"id"`
	BracketId string   `protobuf:"bytes,2,opt,name=bracket_id,json=bracketId,proto3" json:"bracket_id,omitempty" storm:"index"`
	Members   []string `protobuf:"bytes,3,rep,name=members,proto3" json:"members,omitempty"`
	Name      string   `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *Entrant) Reset()         { *m = Entrant{} }
func (m *Entrant) String() string { return proto.CompactTextString(m) }
func (*Entrant) ProtoMessage()    {}

type MatchSet struct {
	Id           string   `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty" storm:"id"`
	BracketId    string   `protobuf:"bytes,2,opt,name=bracket_id,json=bracketId,proto3" json:"bracket_id,omitempty" storm:"index"`
	Round        int32    `protobuf:"varint,3,opt,name=round,proto3" json:"round,omitempty"`
	Predecessors []string `protobuf:"bytes,4,rep,name=predecessors,proto3" json:"predecessors,omitempty"`
	Added        []string `protobuf:"bytes,5,rep,name=added,proto3" json:"added,omitempty"`
	Winners      []string `protobuf:"bytes,6,rep,name=winners,proto3" json:"winners,omitempty"`
	Losers       []string `protobuf:"bytes,7,rep,name=losers,proto3" json:"losers,omitempty"`
}

func (m *MatchSet) Reset()         { *m = MatchSet{} }
func (m *MatchSet) String() string { return proto.CompactTextString(m) }
func (*MatchSet) ProtoMessage()    {}

type Match struct {
	Id         string   `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty" storm:"id"`
	BracketId  string   `protobuf:"bytes,2,opt,name=bracket_id,json=bracketId,proto3" json:"bracket_id,omitempty" storm:"index"`
	MatchSetId string   `protobuf:"bytes,3,opt,name=match_set_id,json=matchSetId,proto3" json:"match_set_id,omitempty" storm:"index"`
	Index      int32    `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
	Placements []string `protobuf:"bytes,5,rep,name=placements,proto3" json:"placements,omitempty"`
	GameType   string   `protobuf:"bytes,6,opt,name=game_type,json=gameType,proto3" json:"game_type,omitempty"`
}

func (m *Match) Reset()         { *m = Match{} }
func (m *Match) String() string { return proto.CompactTextString(m) }
func (*Match) ProtoMessage()    {}
