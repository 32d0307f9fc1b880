package words

// Word lists trimmed to the common core of the game's dictionary.
// Stored uppercase; lookup normalizes before checking.

var threeLetterWords = []string{
	"ACE", "ACT", "ADD", "AGE", "AGO", "AID", "AIM", "AIR", "ALE", "ALL",
	"AND", "ANT", "ANY", "APE", "APT", "ARC", "ARE", "ARK", "ARM", "ART",
	"ASH", "ASK", "ATE", "AWE", "AXE", "BAD", "BAG", "BAN", "BAR", "BAT",
	"BAY", "BED", "BEE", "BEG", "BET", "BIB", "BID", "BIG", "BIN", "BIT",
	"BOA", "BOB", "BOG", "BOW", "BOX", "BOY", "BRA", "BUD", "BUG", "BUN",
	"BUS", "BUT", "BUY", "BYE", "CAB", "CAN", "CAP", "CAR", "CAT", "COB",
	"COD", "COG", "COP", "COT", "COW", "COY", "CRY", "CUB", "CUE", "CUP",
	"CUT", "DAB", "DAD", "DAM", "DAY", "DEN", "DEW", "DID", "DIE", "DIG",
	"DIM", "DIP", "DOE", "DOG", "DOT", "DRY", "DUB", "DUE", "DUG", "DUO",
	"DYE", "EAR", "EAT", "EBB", "EEL", "EGG", "EGO", "ELF", "ELK", "ELM",
	"EMU", "END", "ERA", "ERR", "EVE", "EWE", "EYE", "FAD", "FAN", "FAR",
	"FAT", "FAX", "FED", "FEE", "FEW", "FIB", "FIG", "FIN", "FIR", "FIT",
	"FIX", "FLU", "FLY", "FOE", "FOG", "FOR", "FOX", "FRY", "FUN", "FUR",
	"GAP", "GAS", "GEL", "GEM", "GET", "GIG", "GIN", "GNU", "GOD", "GOO",
	"GOT", "GUM", "GUN", "GUT", "GUY", "GYM", "HAD", "HAM", "HAS", "HAT",
	"HAY", "HEM", "HEN", "HER", "HEW", "HEX", "HID", "HIM", "HIP", "HIS",
	"HIT", "HOG", "HOP", "HOT", "HOW", "HUB", "HUE", "HUG", "HUM", "HUT",
	"ICE", "ICY", "ILL", "IMP", "INK", "INN", "ION", "IRE", "ITS", "IVY",
	"JAB", "JAM", "JAR", "JAW", "JAY", "JET", "JIG", "JOB", "JOG", "JOT",
	"JOY", "JUG", "KEG", "KEY", "KID", "KIN", "KIT", "LAB", "LAD", "LAG",
	"LAP", "LAW", "LAY", "LED", "LEG", "LET", "LID", "LIE", "LIP", "LIT",
	"LOB", "LOG", "LOT", "LOW", "LUG", "LYE", "MAD", "MAN", "MAP", "MAT",
	"MAX", "MAY", "MEN", "MET", "MID", "MIX", "MOB", "MOM", "MOP", "MOW",
	"MUD", "MUG", "MUM", "NAB", "NAG", "NAP", "NET", "NEW", "NIL", "NIT",
	"NOD", "NOR", "NOT", "NOW", "NUN", "NUT", "OAK", "OAR", "OAT", "ODD",
	"ODE", "OFF", "OFT", "OIL", "OLD", "ONE", "OPT", "ORB", "ORE", "OUR",
	"OUT", "OWE", "OWL", "OWN", "PAD", "PAL", "PAN", "PAR", "PAT", "PAW",
	"PAY", "PEA", "PEG", "PEN", "PET", "PEW", "PIE", "PIG", "PIN", "PIT",
	"PLY", "POD", "POP", "POT", "PRO", "PRY", "PUB", "PUN", "PUP", "PUT",
	"RAG", "RAM", "RAN", "RAP", "RAT", "RAW", "RAY", "RED", "REF", "RIB",
	"RID", "RIG", "RIM", "RIP", "ROB", "ROD", "ROE", "ROT", "ROW", "RUB",
	"RUG", "RUM", "RUN", "RUT", "RYE", "SAD", "SAG", "SAP", "SAT", "SAW",
	"SAX", "SAY", "SEA", "SEE", "SET", "SEW", "SHE", "SHY", "SIN", "SIP",
	"SIR", "SIT", "SIX", "SKI", "SKY", "SLY", "SOB", "SOD", "SON", "SOW",
	"SOY", "SPA", "SPY", "STY", "SUB", "SUM", "SUN", "TAB", "TAG", "TAN",
	"TAP", "TAR", "TAX", "TEA", "TEN", "THE", "THY", "TIC", "TIE", "TIN",
	"TIP", "TOE", "TON", "TOO", "TOP", "TOT", "TOW", "TOY", "TRY", "TUB",
	"TUG", "TWO", "URN", "USE", "VAN", "VAT", "VET", "VIA", "VIE", "VOW",
	"WAD", "WAG", "WAR", "WAS", "WAX", "WAY", "WEB", "WED", "WET", "WHO",
	"WHY", "WIG", "WIN", "WIT", "WOE", "WOK", "WON", "WOO", "WOW", "YAK",
	"YAM", "YES", "YET", "YEW", "YOU", "ZAP", "ZEN", "ZIP", "ZOO",
}

var fourLetterWords = []string{
	"ABLE", "ACHE", "ACID", "AGED", "AIDE", "ALSO", "AREA", "ARMY", "ATOM", "AUNT",
	"AWAY", "BABY", "BACK", "BAIT", "BAKE", "BALD", "BALL", "BAND", "BANK", "BARE",
	"BARK", "BARN", "BASE", "BATH", "BEAD", "BEAM", "BEAN", "BEAR", "BEAT", "BEEF",
	"BEEN", "BEER", "BELL", "BELT", "BEND", "BENT", "BEST", "BIKE", "BILL", "BIND",
	"BIRD", "BITE", "BLEW", "BLOW", "BLUE", "BOAT", "BODY", "BOIL", "BOLD", "BOLT",
	"BOMB", "BOND", "BONE", "BOOK", "BOOM", "BOOT", "BORE", "BORN", "BOSS", "BOTH",
	"BOWL", "BRAG", "BRAN", "BRIM", "BULK", "BULL", "BUMP", "BURN", "BUSH", "BUSY",
	"CAGE", "CAKE", "CALF", "CALL", "CALM", "CAME", "CAMP", "CANE", "CARD", "CARE",
	"CART", "CASE", "CASH", "CAST", "CAVE", "CELL", "CHAT", "CHEF", "CHIN", "CHIP",
	"CHOP", "CITY", "CLAD", "CLAM", "CLAN", "CLAP", "CLAW", "CLAY", "CLIP", "CLUB",
	"CLUE", "COAL", "COAT", "CODE", "COIL", "COIN", "COLD", "COMB", "COME", "COOK",
	"COOL", "COPE", "COPY", "CORD", "CORE", "CORN", "COST", "COZY", "CRAB", "CREW",
	"CROP", "CROW", "CUBE", "CURB", "CURE", "CURL", "DARE", "DARK", "DART", "DASH",
	"DATA", "DATE", "DAWN", "DAYS", "DEAD", "DEAF", "DEAL", "DEAN", "DEAR", "DEBT",
	"DECK", "DEED", "DEEP", "DEER", "DENT", "DENY", "DESK", "DIAL", "DICE", "DIET",
	"DIRT", "DISH", "DIVE", "DOCK", "DOES", "DOLL", "DOME", "DONE", "DOOR", "DOSE",
	"DOWN", "DRAG", "DRAW", "DREW", "DRIP", "DROP", "DRUM", "DUCK", "DUEL", "DUET",
	"DULL", "DUMP", "DUSK", "DUST", "DUTY", "EACH", "EARN", "EASE", "EAST", "EASY",
	"ECHO", "EDGE", "ELSE", "EVEN", "EVER", "EVIL", "EXAM", "EXIT", "FACE", "FACT",
	"FADE", "FAIL", "FAIR", "FALL", "FAME", "FARM", "FAST", "FATE", "FEAR", "FEAT",
	"FEED", "FEEL", "FEET", "FELL", "FELT", "FERN", "FILE", "FILL", "FILM", "FIND",
	"FINE", "FIRE", "FIRM", "FISH", "FIST", "FIVE", "FLAG", "FLAT", "FLEA", "FLED",
	"FLEW", "FLIP", "FLOW", "FOAM", "FOIL", "FOLD", "FOLK", "FOND", "FOOD", "FOOL",
	"FOOT", "FORD", "FORK", "FORM", "FORT", "FOUL", "FOUR", "FREE", "FROG", "FROM",
	"FUEL", "FULL", "FUND", "FUSE", "GAIN", "GAME", "GANG", "GATE", "GAVE", "GAZE",
	"GEAR", "GIFT", "GIRL", "GIVE", "GLAD", "GLOW", "GLUE", "GOAL", "GOAT", "GOES",
	"GOLD", "GOLF", "GONE", "GOOD", "GOWN", "GRAB", "GRAY", "GREW", "GRID", "GRIM",
	"GRIN", "GRIP", "GROW", "GULF", "HAIL", "HAIR", "HALF", "HALL", "HALT", "HAND",
	"HANG", "HARD", "HARM", "HATE", "HAUL", "HAVE", "HAWK", "HEAD", "HEAL", "HEAP",
	"HEAR", "HEAT", "HEEL", "HELD", "HELP", "HERB", "HERD", "HERE", "HERO", "HIDE",
	"HIGH", "HIKE", "HILL", "HINT", "HIRE", "HOLD", "HOLE", "HOLY", "HOME", "HOOD",
	"HOOK", "HOPE", "HORN", "HOSE", "HOST", "HOUR", "HUGE", "HUNG", "HUNT", "HURT",
	"ICON", "IDEA", "IDLE", "INCH", "INTO", "IRON", "ITEM", "JADE", "JAZZ", "JOIN",
	"JOKE", "JUMP", "JUNE", "JUNK", "JURY", "JUST", "KEEN", "KEEP", "KEPT", "KICK",
	"KIND", "KING", "KISS", "KITE", "KNEE", "KNEW", "KNIT", "KNOB", "KNOT", "KNOW",
	"LACE", "LACK", "LAID", "LAKE", "LAMB", "LAMP", "LAND", "LANE", "LAST", "LATE",
	"LAWN", "LAZY", "LEAD", "LEAF", "LEAK", "LEAN", "LEAP", "LEFT", "LEND", "LENS",
	"LESS", "LIFE", "LIFT", "LIKE", "LIMB", "LIME", "LINE", "LINK", "LION", "LIST",
	"LIVE", "LOAD", "LOAF", "LOAN", "LOCK", "LOFT", "LONE", "LONG", "LOOK", "LOOP",
	"LORD", "LOSE", "LOSS", "LOST", "LOUD", "LOVE", "LUCK", "LUMP", "LUNG", "MADE",
	"MAIL", "MAIN", "MAKE", "MALE", "MALL", "MANY", "MAPS", "MARE", "MARK", "MASK",
	"MASS", "MAST", "MATE", "MATH", "MAZE", "MEAL", "MEAN", "MEAT", "MEET", "MELT",
	"MEMO", "MEND", "MENU", "MESH", "MESS", "MICE", "MILD", "MILE", "MILK", "MILL",
	"MIND", "MINE", "MINT", "MISS", "MIST", "MOCK", "MODE", "MOLD", "MOLE", "MOOD",
	"MOON", "MORE", "MOSS", "MOST", "MOTH", "MOVE", "MUCH", "MULE", "MUST", "MUTE",
	"MYTH", "NAIL", "NAME", "NAVY", "NEAR", "NEAT", "NECK", "NEED", "NEST", "NEWS",
	"NEXT", "NICE", "NINE", "NODE", "NONE", "NOON", "NORM", "NOSE", "NOTE", "NOUN",
	"OATH", "OBEY", "ODDS", "ONCE", "ONLY", "ONTO", "OPEN", "ORAL", "OVAL", "OVEN",
	"OVER", "PACE", "PACK", "PAGE", "PAID", "PAIL", "PAIN", "PAIR", "PALE", "PALM",
	"PANE", "PARK", "PART", "PASS", "PAST", "PATH", "PAVE", "PEAK", "PEAR", "PEAT",
	"PEEL", "PEER", "PERK", "PEST", "PICK", "PIER", "PILE", "PINE", "PINK", "PINT",
	"PIPE", "PLAN", "PLAY", "PLEA", "PLOT", "PLOW", "PLUG", "PLUS", "POEM", "POET",
	"POLE", "POLL", "POND", "PONY", "POOL", "POOR", "PORK", "PORT", "POSE", "POST",
	"POUR", "PRAY", "PREY", "PULL", "PUMP", "PURE", "PUSH", "QUIT", "QUIZ", "RACE",
	"RACK", "RAFT", "RAGE", "RAID", "RAIL", "RAIN", "RAKE", "RANK", "RARE", "RASH",
	"RATE", "READ", "REAL", "REAR", "REEF", "REEL", "RELY", "RENT", "REST", "RICE",
	"RICH", "RIDE", "RING", "RIPE", "RISE", "RISK", "ROAD", "ROAM", "ROAR", "ROBE",
	"ROCK", "RODE", "ROLE", "ROLL", "ROOF", "ROOM", "ROOT", "ROPE", "ROSE", "RUDE",
	"RUIN", "RULE", "RUNG", "RUSH", "RUST", "SACK", "SAFE", "SAGE", "SAID", "SAIL",
	"SAKE", "SALE", "SALT", "SAME", "SAND", "SANG", "SANK", "SAVE", "SCAN", "SCAR",
	"SEAL", "SEAM", "SEAT", "SEED", "SEEK", "SEEM", "SEEN", "SELF", "SELL", "SEND",
	"SENT", "SHED", "SHIP", "SHOE", "SHOP", "SHOT", "SHOW", "SHUT", "SICK", "SIDE",
	"SIGH", "SIGN", "SILK", "SING", "SINK", "SITE", "SIZE", "SKIN", "SKIP", "SLAB",
	"SLAM", "SLED", "SLID", "SLIM", "SLIP", "SLOW", "SNAP", "SNOW", "SOAK", "SOAP",
	"SOAR", "SOCK", "SOFA", "SOFT", "SOIL", "SOLD", "SOLE", "SOME", "SONG", "SOON",
	"SORE", "SORT", "SOUL", "SOUP", "SOUR", "SPAN", "SPIN", "SPOT", "SPUN", "STAB",
	"STAR", "STAY", "STEM", "STEP", "STIR", "STOP", "SUCH", "SUIT", "SUNG", "SURE",
	"SWAM", "SWAN", "SWAP", "SWIM", "TAIL", "TAKE", "TALE", "TALK", "TALL", "TAME",
	"TANK", "TAPE", "TASK", "TEAM", "TEAR", "TELL", "TEND", "TENT", "TERM", "TEST",
	"TEXT", "THAN", "THAT", "THEM", "THEN", "THEY", "THIN", "THIS", "THUS", "TIDE",
	"TIDY", "TIED", "TILE", "TILL", "TILT", "TIME", "TINY", "TIRE", "TOAD", "TOIL",
	"TOLD", "TOLL", "TOMB", "TONE", "TOOK", "TOOL", "TORE", "TORN", "TOSS", "TOUR",
	"TOWN", "TRAP", "TRAY", "TREE", "TRIM", "TRIP", "TRUE", "TUBE", "TUNE", "TURN",
	"TWIN", "TYPE", "UNIT", "UPON", "URGE", "USED", "USER", "VAIN", "VARY", "VASE",
	"VAST", "VEIL", "VEIN", "VERY", "VEST", "VIEW", "VINE", "VOID", "VOTE", "WADE",
	"WAGE", "WAIT", "WAKE", "WALK", "WALL", "WAND", "WANT", "WARD", "WARM", "WARN",
	"WASH", "WASP", "WAVE", "WEAK", "WEAR", "WEED", "WEEK", "WELL", "WENT", "WERE",
	"WEST", "WHAT", "WHEN", "WHIP", "WHOM", "WIDE", "WIFE", "WILD", "WILL", "WIND",
	"WINE", "WING", "WIPE", "WIRE", "WISE", "WISH", "WITH", "WOKE", "WOLF", "WOOD",
	"WOOL", "WORD", "WORE", "WORK", "WORM", "WORN", "WRAP", "YARD", "YARN", "YEAR",
	"YOUR", "ZERO", "ZONE", "ZOOM",
}

var fiveLetterWords = []string{
	"ABOUT", "ABOVE", "ACTOR", "ADMIT", "ADOPT", "ADULT", "AFTER", "AGAIN", "AGENT", "AGREE",
	"AHEAD", "ALARM", "ALBUM", "ALERT", "ALIKE", "ALIVE", "ALLOW", "ALONE", "ALONG", "ALTER",
	"AMONG", "ANGER", "ANGLE", "ANGRY", "APART", "APPLE", "APPLY", "ARENA", "ARGUE", "ARISE",
	"ARRAY", "ASIDE", "ASSET", "AVOID", "AWAKE", "AWARD", "AWARE", "BADLY", "BAKER", "BASIC",
	"BEACH", "BEGAN", "BEGIN", "BEING", "BELLY", "BELOW", "BENCH", "BIRTH", "BLACK", "BLAME",
	"BLANK", "BLAST", "BLIND", "BLOCK", "BLOOD", "BOARD", "BOAST", "BONUS", "BOOST", "BOOTH",
	"BOUND", "BRAIN", "BRAND", "BRAVE", "BREAD", "BREAK", "BREED", "BRICK", "BRIEF", "BRING",
	"BROAD", "BROKE", "BROWN", "BRUSH", "BUILD", "BUILT", "BUNCH", "BURST", "BUYER", "CABIN",
	"CABLE", "CANDY", "CARGO", "CARRY", "CATCH", "CAUSE", "CHAIN", "CHAIR", "CHALK", "CHARM",
	"CHART", "CHASE", "CHEAP", "CHECK", "CHEEK", "CHEER", "CHESS", "CHEST", "CHIEF", "CHILD",
	"CHOIR", "CHOSE", "CIVIL", "CLAIM", "CLASS", "CLEAN", "CLEAR", "CLERK", "CLICK", "CLIFF",
	"CLIMB", "CLOCK", "CLOSE", "CLOTH", "CLOUD", "COACH", "COAST", "COLOR", "COUCH", "COULD",
	"COUNT", "COURT", "COVER", "CRAFT", "CRANE", "CRASH", "CRAZY", "CREAM", "CRIME", "CROSS",
	"CROWD", "CROWN", "CRUDE", "CURVE", "CYCLE", "DAILY", "DAIRY", "DANCE", "DEALT", "DEATH",
	"DELAY", "DEPTH", "DIRTY", "DOUBT", "DOZEN", "DRAFT", "DRAIN", "DRAMA", "DRANK", "DREAM",
	"DRESS", "DRIED", "DRIFT", "DRILL", "DRINK", "DRIVE", "DROVE", "DYING", "EAGER", "EAGLE",
	"EARLY", "EARTH", "EIGHT", "ELBOW", "ELDER", "EMPTY", "ENEMY", "ENJOY", "ENTER", "ENTRY",
	"EQUAL", "ERROR", "EVENT", "EVERY", "EXACT", "EXIST", "EXTRA", "FAITH", "FALSE", "FANCY",
	"FAULT", "FENCE", "FEVER", "FIELD", "FIFTH", "FIFTY", "FIGHT", "FINAL", "FIRST", "FLAME",
	"FLASH", "FLEET", "FLESH", "FLOAT", "FLOCK", "FLOOD", "FLOOR", "FLOUR", "FLUID", "FOCUS",
	"FORCE", "FORTH", "FORTY", "FORUM", "FOUND", "FRAME", "FRANK", "FRAUD", "FRESH", "FRONT",
	"FROST", "FRUIT", "FULLY", "FUNNY", "GIANT", "GIVEN", "GLASS", "GLOBE", "GLORY", "GLOVE",
	"GOING", "GRACE", "GRADE", "GRAIN", "GRAND", "GRANT", "GRAPE", "GRASP", "GRASS", "GRAVE",
	"GREAT", "GREEN", "GREET", "GRIEF", "GROSS", "GROUP", "GROVE", "GROWN", "GUARD", "GUESS",
	"GUEST", "GUIDE", "HAPPY", "HARSH", "HEART", "HEAVY", "HELLO", "HENCE", "HONEY", "HONOR",
	"HORSE", "HOTEL", "HOUSE", "HUMAN", "HUMOR", "HURRY", "IDEAL", "IMAGE", "IMPLY", "INDEX",
	"INNER", "INPUT", "ISSUE", "JOINT", "JUDGE", "JUICE", "KNIFE", "KNOCK", "KNOWN", "LABEL",
	"LABOR", "LARGE", "LASER", "LATER", "LAUGH", "LAYER", "LEARN", "LEASE", "LEAST", "LEAVE",
	"LEGAL", "LEMON", "LEVEL", "LIGHT", "LIMIT", "LINEN", "LOCAL", "LODGE", "LOGIC", "LOOSE",
	"LOVER", "LOWER", "LOYAL", "LUCKY", "LUNCH", "LYING", "MAGIC", "MAJOR", "MAKER", "MARCH",
	"MATCH", "MAYBE", "MAYOR", "MEANT", "MEDAL", "MEDIA", "MELON", "MERCY", "MERGE", "MERIT",
	"MERRY", "METAL", "METER", "MIGHT", "MINOR", "MINUS", "MIXED", "MODEL", "MONEY", "MONTH",
	"MORAL", "MOTOR", "MOUNT", "MOUSE", "MOUTH", "MOVIE", "MUSIC", "NAKED", "NERVE", "NEVER",
	"NEWLY", "NIGHT", "NOBLE", "NOISE", "NORTH", "NOVEL", "NURSE", "OCCUR", "OCEAN", "OFFER",
	"OFTEN", "ONION", "ORDER", "OTHER", "OUGHT", "OUTER", "OWNER", "PAINT", "PANEL", "PAPER",
	"PARTY", "PATCH", "PAUSE", "PEACE", "PEACH", "PEARL", "PHASE", "PHONE", "PHOTO", "PIANO",
	"PIECE", "PILOT", "PITCH", "PLACE", "PLAIN", "PLANE", "PLANT", "PLATE", "POINT", "POUND",
	"POWER", "PRESS", "PRICE", "PRIDE", "PRIME", "PRINT", "PRIOR", "PRIZE", "PROOF", "PROUD",
	"PROVE", "PUPIL", "QUEEN", "QUERY", "QUEST", "QUICK", "QUIET", "QUITE", "QUOTE", "RADIO",
	"RAISE", "RANGE", "RAPID", "RATIO", "REACH", "REACT", "READY", "REALM", "RIDGE", "RIGHT",
	"RIGID", "RIVAL", "RIVER", "ROBIN", "ROCKY", "ROMAN", "ROUGH", "ROUND", "ROUTE", "ROYAL",
	"RURAL", "SCALE", "SCENE", "SCOPE", "SCORE", "SENSE", "SERVE", "SEVEN", "SHADE", "SHAKE",
	"SHALL", "SHAME", "SHAPE", "SHARE", "SHARP", "SHEEP", "SHEET", "SHELF", "SHELL", "SHIFT",
	"SHINE", "SHIRT", "SHOCK", "SHORE", "SHORT", "SHOUT", "SIGHT", "SILLY", "SINCE", "SIXTH",
	"SIXTY", "SKILL", "SLEEP", "SLICE", "SLIDE", "SMALL", "SMART", "SMELL", "SMILE", "SMOKE",
	"SNAKE", "SOLID", "SOLVE", "SORRY", "SOUND", "SOUTH", "SPACE", "SPARE", "SPEAK", "SPEED",
	"SPEND", "SPENT", "SPLIT", "SPOKE", "SPORT", "STAFF", "STAGE", "STAIR", "STAKE", "STAND",
	"START", "STATE", "STEAM", "STEEL", "STEEP", "STEER", "STICK", "STIFF", "STILL", "STOCK",
	"STONE", "STOOD", "STORE", "STORM", "STORY", "STRIP", "STUCK", "STUDY", "STUFF", "STYLE",
	"SUGAR", "SUITE", "SUNNY", "SUPER", "SWEET", "SWEPT", "SWIFT", "SWING", "SWORD", "TABLE",
	"TAKEN", "TASTE", "TEACH", "TEETH", "TEMPO", "TENTH", "THANK", "THEFT", "THEIR", "THEME",
	"THERE", "THESE", "THICK", "THING", "THINK", "THIRD", "THOSE", "THREE", "THREW", "THROW",
	"THUMB", "TIGER", "TIGHT", "TIRED", "TITLE", "TODAY", "TOKEN", "TOTAL", "TOUCH", "TOUGH",
	"TOWER", "TRACK", "TRADE", "TRAIL", "TRAIN", "TREAT", "TREND", "TRIAL", "TRIBE", "TRICK",
	"TRIED", "TRUCK", "TRULY", "TRUNK", "TRUST", "TRUTH", "TWICE", "UNCLE", "UNDER", "UNION",
	"UNITY", "UNTIL", "UPPER", "UPSET", "URBAN", "USAGE", "USUAL", "VALID", "VALUE", "VIDEO",
	"VIRUS", "VISIT", "VITAL", "VOCAL", "VOICE", "WAGON", "WASTE", "WATCH", "WATER", "WHEAT",
	"WHEEL", "WHERE", "WHICH", "WHILE", "WHITE", "WHOLE", "WHOSE", "WOMAN", "WORLD", "WORRY",
	"WORSE", "WORST", "WORTH", "WOULD", "WOUND", "WRIST", "WRITE", "WRONG", "WROTE", "YIELD",
	"YOUNG", "YOUTH",
}

var sixLetterWords = []string{
	"ABSORB", "ACCEPT", "ACCESS", "ACROSS", "ACTION", "ACTIVE", "ACTUAL", "ADVICE", "ADVISE", "AFFORD",
	"AFRAID", "AGENCY", "AGENDA", "ALMOST", "ALWAYS", "AMOUNT", "ANIMAL", "ANNUAL", "ANSWER", "ANYONE",
	"ANYWAY", "APPEAL", "APPEAR", "AROUND", "ARRIVE", "ARTIST", "ASPECT", "ASSIST", "ASSUME", "ATTACH",
	"ATTACK", "ATTEND", "AUTHOR", "AUTUMN", "AVENUE", "BACKED", "BARELY", "BASKET", "BATTLE", "BEAUTY",
	"BECAME", "BECOME", "BEFORE", "BEHALF", "BEHIND", "BELIEF", "BELONG", "BESIDE", "BETTER", "BEYOND",
	"BISHOP", "BORDER", "BOTTLE", "BOTTOM", "BOUGHT", "BRANCH", "BREATH", "BRIDGE", "BRIGHT", "BROKEN",
	"BUDGET", "BURDEN", "BUREAU", "BUTTON", "CAMERA", "CANCER", "CANNOT", "CANVAS", "CARBON", "CAREER",
	"CASTLE", "CASUAL", "CAUGHT", "CENTER", "CHANCE", "CHANGE", "CHARGE", "CHOICE", "CHOOSE", "CHOSEN",
	"CHURCH", "CIRCLE", "CLIENT", "CLOSED", "CLOSER", "COFFEE", "COLUMN", "COMBAT", "COMING", "COMMON",
	"COPPER", "CORNER", "COSTLY", "COUNTY", "COUPLE", "COURSE", "COUSIN", "COVERT", "CREATE", "CREDIT",
	"CRISIS", "CUSTOM", "DAMAGE", "DANGER", "DEALER", "DEBATE", "DECADE", "DECIDE", "DEFEAT", "DEFEND",
	"DEFINE", "DEGREE", "DEMAND", "DEPEND", "DEPUTY", "DESERT", "DESIGN", "DESIRE", "DETAIL", "DETECT",
	"DEVICE", "DIFFER", "DINNER", "DIRECT", "DOCTOR", "DOLLAR", "DOMAIN", "DOUBLE", "DRIVEN", "DRIVER",
	"DURING", "EASILY", "EATING", "EDITOR", "EFFECT", "EFFORT", "EIGHTH", "EITHER", "ELEVEN", "EMERGE",
	"EMPIRE", "EMPLOY", "ENABLE", "ENDING", "ENERGY", "ENGAGE", "ENGINE", "ENOUGH", "ENSURE", "ENTIRE",
	"ENTITY", "EQUITY", "ESCAPE", "ESTATE", "ETHNIC", "EXCEED", "EXCEPT", "EXCESS", "EXPAND", "EXPECT",
	"EXPERT", "EXPORT", "EXTEND", "EXTENT", "FABRIC", "FACING", "FACTOR", "FAILED", "FAIRLY", "FALLEN",
	"FAMILY", "FAMOUS", "FATHER", "FELLOW", "FEMALE", "FIGURE", "FILING", "FINGER", "FINISH", "FISCAL",
	"FLIGHT", "FLYING", "FOLLOW", "FORCED", "FOREST", "FORGET", "FORMAL", "FORMAT", "FORMER", "FOSTER",
	"FOURTH", "FRENCH", "FRIEND", "FUTURE", "GARDEN", "GATHER", "GENDER", "GERMAN", "GLOBAL", "GOLDEN",
	"GROUND", "GROWTH", "GUILTY", "HANDED", "HANDLE", "HAPPEN", "HARDLY", "HEADED", "HEALTH", "HEIGHT",
	"HIDDEN", "HOLDER", "HONEST", "IMPACT", "IMPORT", "INCOME", "INDEED", "INJURY", "INSIDE", "INTENT",
	"INVEST", "ISLAND", "ITSELF", "JERSEY", "JOSEPH", "JUNIOR", "KILLED", "LABOUR", "LATEST", "LATTER",
	"LAUNCH", "LAWYER", "LEADER", "LEAGUE", "LEAVES", "LEGACY", "LENGTH", "LESSON", "LETTER", "LIGHTS",
	"LIKELY", "LINKED", "LIQUID", "LISTEN", "LITTLE", "LIVING", "LOSING", "LUXURY", "MAINLY", "MAKING",
	"MANAGE", "MANNER", "MARGIN", "MARINE", "MARKED", "MARKET", "MASTER", "MATTER", "MATURE", "MEDIUM",
	"MEMBER", "MEMORY", "MENTAL", "MERELY", "MERGER", "METHOD", "MIDDLE", "MILLER", "MINING", "MINUTE",
	"MIRROR", "MOBILE", "MODERN", "MODEST", "MODULE", "MOMENT", "MOSTLY", "MOTHER", "MOTION", "MOVING",
	"MURDER", "MUSCLE", "MUSEUM", "MUTUAL", "MYSELF", "NARROW", "NATION", "NATIVE", "NATURE", "NEARBY",
	"NEARLY", "NIGHTS", "NOBODY", "NORMAL", "NOTICE", "NOTION", "NUMBER", "OBJECT", "OBTAIN", "OFFICE",
	"OFFSET", "ONLINE", "OPTION", "ORANGE", "ORIGIN", "OUTPUT", "OXFORD", "PACKED", "PALACE", "PARENT",
	"PARTLY", "PATENT", "PEOPLE", "PERIOD", "PERMIT", "PERSON", "PHRASE", "PICKED", "PLANET", "PLAYER",
	"PLEASE", "PLENTY", "POCKET", "POLICE", "POLICY", "PREFER", "PRETTY", "PRINCE", "PRISON", "PROFIT",
	"PROPER", "PROVEN", "PUBLIC", "PURSUE", "RAISED", "RANDOM", "RARELY", "RATHER", "RATING", "READER",
	"REALLY", "REASON", "RECALL", "RECENT", "RECORD", "REDUCE", "REFORM", "REGARD", "REGIME",
	"REGION", "RELATE", "RELIEF", "REMAIN", "REMIND", "REMOTE", "REMOVE", "REPAIR", "REPEAT",
	"REPORT", "RESCUE", "RESORT", "RESULT", "RETAIL", "RETAIN", "RETIRE", "RETURN", "REVEAL", "REVIEW",
	"REWARD", "RIDING", "RISING", "ROBUST", "RULING", "SAFETY", "SALARY", "SAMPLE", "SAVING", "SAYING",
	"SCHEME", "SCHOOL", "SCREEN", "SEARCH", "SEASON", "SECOND", "SECRET", "SECTOR", "SECURE", "SEEING",
	"SELECT", "SELLER", "SENIOR", "SERIES", "SERVER", "SETTLE", "SEVERE", "SHADOW", "SHOULD", "SIGNAL",
	"SILENT", "SILVER", "SIMPLE", "SIMPLY", "SINGLE", "SISTER", "SLIGHT", "SMOOTH", "SOCIAL", "SOCKET",
	"SODIUM", "SOLELY", "SOURCE", "SOVIET", "SPEECH", "SPIRIT", "SPOKEN", "SPREAD", "SPRING",
	"SQUARE", "STABLE", "STATUS", "STEADY", "STOLEN", "STRAIN", "STREAM", "STREET", "STRESS", "STRICT",
	"STRIKE", "STRING", "STRONG", "STRUCK", "STUDIO", "SUBMIT", "SUDDEN", "SUFFER", "SUMMER", "SUMMIT",
	"SUPPLY", "SURELY", "SURVEY", "SWITCH", "SYMBOL", "SYSTEM", "TACKLE", "TAKING", "TALENT", "TARGET",
	"TAUGHT", "TEMPLE", "TENANT", "TENDER", "TENNIS", "THEORY", "THIRTY", "THOUGH", "THREAD", "THREAT",
	"THROWN", "TICKET", "TIMBER", "TIMELY", "TISSUE", "TOWARD", "TRAVEL", "TREATY", "TRYING", "TWELVE",
	"TWENTY", "UNABLE", "UNIQUE", "UNITED", "UNLESS", "UNLIKE", "UPDATE", "USEFUL", "VALLEY", "VENDOR",
	"VERSUS", "VICTIM", "VISION", "VISUAL", "VOLUME", "WALKER", "WEALTH", "WEEKLY", "WEIGHT", "WHOLLY",
	"WINDOW", "WINNER", "WINTER", "WITHIN", "WONDER", "WORKER", "WRITER", "YELLOW",
}
